package repository

import (
	"time"

	apperrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/models"
)

// TicketRepository owns the in-memory ticket collection.
type TicketRepository struct {
	ids     IDGenerator
	tickets []models.Ticket
}

// NewTicketRepository creates a TicketRepository over the given initial
// tickets, usually the collection returned by the persistence adapter.
func NewTicketRepository(ids IDGenerator, initial []models.Ticket) *TicketRepository {
	tickets := make([]models.Ticket, len(initial))
	copy(tickets, initial)
	return &TicketRepository{ids: ids, tickets: tickets}
}

// All returns a copy of the collection in insertion order.
func (r *TicketRepository) All() []models.Ticket {
	out := make([]models.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out
}

// Find returns the ticket with the given id.
func (r *TicketRepository) Find(id string) (models.Ticket, error) {
	for _, t := range r.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, apperrors.NewNotFoundError("ticket", id)
}

// CreateTicketInput carries the caller-settable fields of a new ticket.
// AssigneeID, SprintID and EpicID default to absent.
type CreateTicketInput struct {
	Title       string
	Description string
	StoryPoints int
	Type        models.TicketType
	Status      models.TicketStatus
	CreatedBy   string
	AssigneeID  string
	SprintID    string
	EpicID      string
}

// Create validates the input, assigns a fresh id, stamps createdAt and
// updatedAt with the same instant and stores the ticket.
func (r *TicketRepository) Create(input CreateTicketInput) (models.Ticket, error) {
	if input.StoryPoints <= 0 {
		return models.Ticket{}, apperrors.NewValidationError("storyPoints", "must be a positive integer")
	}
	if !models.ValidTicketType(input.Type) {
		return models.Ticket{}, apperrors.NewValidationError("type", "unknown ticket type")
	}
	if !models.ValidTicketStatus(input.Status) {
		return models.Ticket{}, apperrors.NewValidationError("status", "unknown ticket status")
	}

	now := time.Now()
	ticket := models.Ticket{
		ID:          r.ids.NextID(),
		Title:       input.Title,
		Description: input.Description,
		StoryPoints: input.StoryPoints,
		Type:        input.Type,
		Status:      input.Status,
		CreatedBy:   input.CreatedBy,
		AssigneeID:  input.AssigneeID,
		SprintID:    input.SprintID,
		EpicID:      input.EpicID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.tickets = append(r.tickets, ticket)
	return ticket, nil
}

// UpdateTicketInput carries a partial update. Nil fields are left
// untouched; a pointer to the empty string clears an optional reference.
// ID, CreatedAt and CreatedBy are not representable here and therefore
// cannot be changed, matching the immutability contract.
type UpdateTicketInput struct {
	Title       *string
	Description *string
	StoryPoints *int
	Type        *models.TicketType
	Status      *models.TicketStatus
	AssigneeID  *string
	SprintID    *string
	EpicID      *string
}

// Update merges the provided fields over the stored ticket and refreshes
// updatedAt.
func (r *TicketRepository) Update(id string, input UpdateTicketInput) (models.Ticket, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Ticket{}, apperrors.NewNotFoundError("ticket", id)
	}

	if input.StoryPoints != nil && *input.StoryPoints <= 0 {
		return models.Ticket{}, apperrors.NewValidationError("storyPoints", "must be a positive integer")
	}
	if input.Type != nil && !models.ValidTicketType(*input.Type) {
		return models.Ticket{}, apperrors.NewValidationError("type", "unknown ticket type")
	}
	if input.Status != nil && !models.ValidTicketStatus(*input.Status) {
		return models.Ticket{}, apperrors.NewValidationError("status", "unknown ticket status")
	}

	ticket := r.tickets[idx]
	if input.Title != nil {
		ticket.Title = *input.Title
	}
	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if input.StoryPoints != nil {
		ticket.StoryPoints = *input.StoryPoints
	}
	if input.Type != nil {
		ticket.Type = *input.Type
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.AssigneeID != nil {
		ticket.AssigneeID = *input.AssigneeID
	}
	if input.SprintID != nil {
		ticket.SprintID = *input.SprintID
	}
	if input.EpicID != nil {
		ticket.EpicID = *input.EpicID
	}
	ticket.UpdatedAt = touch(ticket.UpdatedAt)

	r.tickets[idx] = ticket
	return ticket, nil
}

// Delete removes the ticket. Deletion is hard; there are no tombstones.
func (r *TicketRepository) Delete(id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return apperrors.NewNotFoundError("ticket", id)
	}
	r.tickets = append(r.tickets[:idx], r.tickets[idx+1:]...)
	return nil
}

// SetSprint moves the ticket into the given sprint; an empty sprint id
// returns it to the backlog. Sprint existence is checked by the façade,
// which owns both collections.
func (r *TicketRepository) SetSprint(id, sprintID string) (models.Ticket, error) {
	return r.Update(id, UpdateTicketInput{SprintID: &sprintID})
}

// ClearEpic removes the epic reference from every ticket pointing at
// epicID. Called when the epic is deleted so no dangling reference
// persists.
func (r *TicketRepository) ClearEpic(epicID string) {
	for i, t := range r.tickets {
		if t.EpicID == epicID {
			r.tickets[i].EpicID = ""
			r.tickets[i].UpdatedAt = touch(t.UpdatedAt)
		}
	}
}

// ClearSprint returns every ticket of the given sprint to the backlog.
// Called when the sprint is deleted, mirroring the epic cascade.
func (r *TicketRepository) ClearSprint(sprintID string) {
	for i, t := range r.tickets {
		if t.SprintID == sprintID {
			r.tickets[i].SprintID = ""
			r.tickets[i].UpdatedAt = touch(t.UpdatedAt)
		}
	}
}

func (r *TicketRepository) indexOf(id string) int {
	for i, t := range r.tickets {
		if t.ID == id {
			return i
		}
	}
	return -1
}
