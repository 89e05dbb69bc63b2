// Package views derives filtered and grouped ticket lists for presentation.
//
// Every function is pure: no side effects, no mutation of its inputs, and
// the output preserves the iteration order of the input collection.
package views

import (
	"strings"

	"github.com/sprintboard/sprintboard/internal/models"
)

// AssigneeUnassigned is the sentinel assignee filter value matching tickets
// with no assignee.
const AssigneeUnassigned = "unassigned"

// TicketsInSprint returns the tickets assigned to the given sprint.
func TicketsInSprint(tickets []models.Ticket, sprintID string) []models.Ticket {
	out := make([]models.Ticket, 0)
	for _, t := range tickets {
		if t.SprintID == sprintID && sprintID != "" {
			out = append(out, t)
		}
	}
	return out
}

// BacklogTickets returns the tickets with no sprint assignment.
func BacklogTickets(tickets []models.Ticket) []models.Ticket {
	out := make([]models.Ticket, 0)
	for _, t := range tickets {
		if t.InBacklog() {
			out = append(out, t)
		}
	}
	return out
}

// BacklogFilter narrows a ticket list. Empty fields match everything.
// AssigneeID may be a concrete user id or the AssigneeUnassigned sentinel.
type BacklogFilter struct {
	Title      string
	EpicID     string
	AssigneeID string
}

// FilterBacklog applies the three filter predicates with logical AND:
// case-insensitive substring match on the title, exact match on the epic,
// and exact or unassigned match on the assignee.
func FilterBacklog(tickets []models.Ticket, filter BacklogFilter) []models.Ticket {
	title := strings.ToLower(filter.Title)
	out := make([]models.Ticket, 0)
	for _, t := range tickets {
		if title != "" && !strings.Contains(strings.ToLower(t.Title), title) {
			continue
		}
		if filter.EpicID != "" && t.EpicID != filter.EpicID {
			continue
		}
		if filter.AssigneeID != "" {
			if filter.AssigneeID == AssigneeUnassigned {
				if t.AssigneeID != "" {
					continue
				}
			} else if t.AssigneeID != filter.AssigneeID {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// AssigneeGroup is one user's share of a ticket set.
type AssigneeGroup struct {
	User    models.User
	Tickets []models.Ticket
}

// BoardGroups partitions a ticket set into the current user's tickets and
// one group per other user that has at least one ticket. Users without
// tickets produce no group.
type BoardGroups struct {
	Mine   []models.Ticket
	Others []AssigneeGroup
}

// GroupByAssignee partitions tickets by assignee relative to the current
// user. Group order follows the users list; ticket order within a group
// follows the input collection.
func GroupByAssignee(tickets []models.Ticket, users []models.User, currentUserID string) BoardGroups {
	groups := BoardGroups{Mine: make([]models.Ticket, 0)}
	for _, t := range tickets {
		if t.AssigneeID == currentUserID && currentUserID != "" {
			groups.Mine = append(groups.Mine, t)
		}
	}

	for _, u := range users {
		if u.ID == currentUserID {
			continue
		}
		var assigned []models.Ticket
		for _, t := range tickets {
			if t.AssigneeID == u.ID {
				assigned = append(assigned, t)
			}
		}
		if len(assigned) > 0 {
			groups.Others = append(groups.Others, AssigneeGroup{User: u, Tickets: assigned})
		}
	}

	return groups
}

// OwnedOrAssignedTo returns the tickets the user created or is assigned
// to, used to split "my" backlog items from everyone else's.
func OwnedOrAssignedTo(tickets []models.Ticket, userID string) []models.Ticket {
	out := make([]models.Ticket, 0)
	for _, t := range tickets {
		if t.CreatedBy == userID || (t.AssigneeID == userID && userID != "") {
			out = append(out, t)
		}
	}
	return out
}

// NotOwnedOrAssignedTo is the complement of OwnedOrAssignedTo over the same
// input.
func NotOwnedOrAssignedTo(tickets []models.Ticket, userID string) []models.Ticket {
	out := make([]models.Ticket, 0)
	for _, t := range tickets {
		if t.CreatedBy != userID && (t.AssigneeID != userID || userID == "") {
			out = append(out, t)
		}
	}
	return out
}
