package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/sprintboard/sprintboard/internal/errors"
)

func newSprintRepo() *SprintRepository {
	return NewSprintRepository(UUIDGenerator{}, nil)
}

func sprintInput(name string) CreateSprintInput {
	return CreateSprintInput{
		Name:      name,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateSprint_InactiveByDefault(t *testing.T) {
	repo := newSprintRepo()

	sprint, err := repo.Create(sprintInput("Sprint 1"))
	require.NoError(t, err)
	assert.False(t, sprint.IsActive)
	assert.NotEmpty(t, sprint.ID)
}

func TestCreateSprint_Validation(t *testing.T) {
	repo := newSprintRepo()

	_, err := repo.Create(sprintInput(""))
	assert.True(t, apperrors.IsValidation(err))

	input := sprintInput("Sprint 1")
	input.EndDate = input.StartDate.AddDate(0, 0, -1)
	_, err = repo.Create(input)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSetActive_ExactlyOneActive(t *testing.T) {
	repo := newSprintRepo()
	s1, err := repo.Create(sprintInput("Sprint 1"))
	require.NoError(t, err)
	s2, err := repo.Create(sprintInput("Sprint 2"))
	require.NoError(t, err)

	require.NoError(t, repo.SetActive(s1.ID))
	require.NoError(t, repo.SetActive(s2.ID))

	var active []string
	for _, s := range repo.All() {
		if s.IsActive {
			active = append(active, s.ID)
		}
	}
	require.Len(t, active, 1)
	assert.Equal(t, s2.ID, active[0])
}

func TestSetActive_NotFound(t *testing.T) {
	repo := newSprintRepo()
	s1, err := repo.Create(sprintInput("Sprint 1"))
	require.NoError(t, err)
	require.NoError(t, repo.SetActive(s1.ID))

	err = repo.SetActive("missing")
	assert.True(t, apperrors.IsNotFound(err))

	// a failed activation must not deactivate the current sprint
	current, ok := repo.Active()
	require.True(t, ok)
	assert.Equal(t, s1.ID, current.ID)
}

func TestDeleteSprint(t *testing.T) {
	repo := newSprintRepo()
	sprint, err := repo.Create(sprintInput("Sprint 1"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(sprint.ID))
	assert.False(t, repo.Exists(sprint.ID))
	assert.True(t, apperrors.IsNotFound(repo.Delete(sprint.ID)))
}

func TestUpdateSprint(t *testing.T) {
	repo := newSprintRepo()
	sprint, err := repo.Create(sprintInput("Sprint 1"))
	require.NoError(t, err)

	name := "Sprint 1 (extended)"
	end := sprint.EndDate.AddDate(0, 0, 7)
	updated, err := repo.Update(sprint.ID, UpdateSprintInput{Name: &name, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, end, updated.EndDate)
	assert.Equal(t, sprint.StartDate, updated.StartDate)
}
