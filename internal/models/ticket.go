package models

import "time"

type TicketType string

const (
	TicketTypeStory          TicketType = "Story"
	TicketTypeTechnicalStory TicketType = "Technical Story"
	TicketTypeBug            TicketType = "Bug"
)

// ValidTicketType reports whether t is one of the known ticket types.
func ValidTicketType(t TicketType) bool {
	switch t {
	case TicketTypeStory, TicketTypeTechnicalStory, TicketTypeBug:
		return true
	}
	return false
}

type TicketStatus string

const (
	TicketStatusToDo         TicketStatus = "To Do"
	TicketStatusInProgress   TicketStatus = "In Progress"
	TicketStatusReadyToMerge TicketStatus = "Ready to Merge"
	TicketStatusDone         TicketStatus = "Done"
)

// ValidTicketStatus reports whether s is one of the known ticket statuses.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusToDo, TicketStatusInProgress, TicketStatusReadyToMerge, TicketStatusDone:
		return true
	}
	return false
}

// Ticket is a unit of trackable work. AssigneeID, SprintID and EpicID are
// empty when unset; a ticket with no SprintID is in the backlog. References
// to users are advisory and may dangle.
type Ticket struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	StoryPoints int          `json:"storyPoints"`
	Type        TicketType   `json:"type"`
	Status      TicketStatus `json:"status"`
	CreatedBy   string       `json:"createdBy"`
	AssigneeID  string       `json:"assigneeId,omitempty"`
	SprintID    string       `json:"sprintId,omitempty"`
	EpicID      string       `json:"epicId,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// InBacklog reports whether the ticket has no sprint assignment.
func (t Ticket) InBacklog() bool {
	return t.SprintID == ""
}
