package repository

import (
	"time"

	apperrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/models"
)

// SprintRepository owns the in-memory sprint collection and the
// single-active-sprint invariant.
type SprintRepository struct {
	ids     IDGenerator
	sprints []models.Sprint
}

// NewSprintRepository creates a SprintRepository over the given initial
// sprints.
func NewSprintRepository(ids IDGenerator, initial []models.Sprint) *SprintRepository {
	sprints := make([]models.Sprint, len(initial))
	copy(sprints, initial)
	return &SprintRepository{ids: ids, sprints: sprints}
}

// All returns a copy of the collection in insertion order.
func (r *SprintRepository) All() []models.Sprint {
	out := make([]models.Sprint, len(r.sprints))
	copy(out, r.sprints)
	return out
}

// Find returns the sprint with the given id.
func (r *SprintRepository) Find(id string) (models.Sprint, error) {
	for _, s := range r.sprints {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Sprint{}, apperrors.NewNotFoundError("sprint", id)
}

// Exists reports whether a sprint with the given id is present.
func (r *SprintRepository) Exists(id string) bool {
	_, err := r.Find(id)
	return err == nil
}

// Active returns the currently active sprint, if any.
func (r *SprintRepository) Active() (models.Sprint, bool) {
	for _, s := range r.sprints {
		if s.IsActive {
			return s, true
		}
	}
	return models.Sprint{}, false
}

// CreateSprintInput carries the caller-settable fields of a new sprint.
type CreateSprintInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// Create assigns a fresh id and stores the sprint. New sprints are
// inactive until explicitly activated.
func (r *SprintRepository) Create(input CreateSprintInput) (models.Sprint, error) {
	if input.Name == "" {
		return models.Sprint{}, apperrors.NewValidationError("name", "must not be empty")
	}
	if input.EndDate.Before(input.StartDate) {
		return models.Sprint{}, apperrors.NewValidationError("endDate", "must not precede startDate")
	}

	sprint := models.Sprint{
		ID:        r.ids.NextID(),
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IsActive:  false,
		CreatedAt: time.Now(),
	}

	r.sprints = append(r.sprints, sprint)
	return sprint, nil
}

// UpdateSprintInput carries a partial sprint update.
type UpdateSprintInput struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Update merges the provided fields over the stored sprint.
func (r *SprintRepository) Update(id string, input UpdateSprintInput) (models.Sprint, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Sprint{}, apperrors.NewNotFoundError("sprint", id)
	}

	sprint := r.sprints[idx]
	if input.Name != nil {
		if *input.Name == "" {
			return models.Sprint{}, apperrors.NewValidationError("name", "must not be empty")
		}
		sprint.Name = *input.Name
	}
	if input.StartDate != nil {
		sprint.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		sprint.EndDate = *input.EndDate
	}
	if sprint.EndDate.Before(sprint.StartDate) {
		return models.Sprint{}, apperrors.NewValidationError("endDate", "must not precede startDate")
	}

	r.sprints[idx] = sprint
	return sprint, nil
}

// SetActive activates the target sprint and deactivates every other one in
// the same pass, so at most one sprint is ever active.
func (r *SprintRepository) SetActive(id string) error {
	if r.indexOf(id) < 0 {
		return apperrors.NewNotFoundError("sprint", id)
	}
	for i := range r.sprints {
		r.sprints[i].IsActive = r.sprints[i].ID == id
	}
	return nil
}

// Delete removes the sprint. The façade cascades the ticket side.
func (r *SprintRepository) Delete(id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return apperrors.NewNotFoundError("sprint", id)
	}
	r.sprints = append(r.sprints[:idx], r.sprints[idx+1:]...)
	return nil
}

func (r *SprintRepository) indexOf(id string) int {
	for i, s := range r.sprints {
		if s.ID == id {
			return i
		}
	}
	return -1
}
