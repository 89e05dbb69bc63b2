package repository

import (
	"time"

	apperrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/models"
)

// EpicRepository owns the in-memory epic collection.
type EpicRepository struct {
	ids   IDGenerator
	epics []models.Epic
}

// NewEpicRepository creates an EpicRepository over the given initial epics.
func NewEpicRepository(ids IDGenerator, initial []models.Epic) *EpicRepository {
	epics := make([]models.Epic, len(initial))
	copy(epics, initial)
	return &EpicRepository{ids: ids, epics: epics}
}

// All returns a copy of the collection in insertion order.
func (r *EpicRepository) All() []models.Epic {
	out := make([]models.Epic, len(r.epics))
	copy(out, r.epics)
	return out
}

// Find returns the epic with the given id.
func (r *EpicRepository) Find(id string) (models.Epic, error) {
	for _, e := range r.epics {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Epic{}, apperrors.NewNotFoundError("epic", id)
}

// CreateEpicInput carries the caller-settable fields of a new epic.
type CreateEpicInput struct {
	Title       string
	Description string
	Color       string
}

// Create assigns a fresh id and stores the epic.
func (r *EpicRepository) Create(input CreateEpicInput) (models.Epic, error) {
	if input.Title == "" {
		return models.Epic{}, apperrors.NewValidationError("title", "must not be empty")
	}

	now := time.Now()
	epic := models.Epic{
		ID:          r.ids.NextID(),
		Title:       input.Title,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.epics = append(r.epics, epic)
	return epic, nil
}

// UpdateEpicInput carries a partial epic update.
type UpdateEpicInput struct {
	Title       *string
	Description *string
	Color       *string
}

// Update merges the provided fields over the stored epic and refreshes
// updatedAt.
func (r *EpicRepository) Update(id string, input UpdateEpicInput) (models.Epic, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Epic{}, apperrors.NewNotFoundError("epic", id)
	}

	epic := r.epics[idx]
	if input.Title != nil {
		if *input.Title == "" {
			return models.Epic{}, apperrors.NewValidationError("title", "must not be empty")
		}
		epic.Title = *input.Title
	}
	if input.Description != nil {
		epic.Description = *input.Description
	}
	if input.Color != nil {
		epic.Color = *input.Color
	}
	epic.UpdatedAt = touch(epic.UpdatedAt)

	r.epics[idx] = epic
	return epic, nil
}

// Delete removes the epic. The façade clears the epic reference on every
// ticket in the same atomic step.
func (r *EpicRepository) Delete(id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return apperrors.NewNotFoundError("epic", id)
	}
	r.epics = append(r.epics[:idx], r.epics[idx+1:]...)
	return nil
}

func (r *EpicRepository) indexOf(id string) int {
	for i, e := range r.epics {
		if e.ID == id {
			return i
		}
	}
	return -1
}
