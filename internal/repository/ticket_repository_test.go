package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/models"
)

func newTicketRepo() *TicketRepository {
	return NewTicketRepository(UUIDGenerator{}, nil)
}

func validTicketInput() CreateTicketInput {
	return CreateTicketInput{
		Title:       "Fix login bug",
		Description: "Users cannot login with special characters in email",
		StoryPoints: 3,
		Type:        models.TicketTypeBug,
		Status:      models.TicketStatusToDo,
		CreatedBy:   "u1",
	}
}

func TestCreateTicket_Defaults(t *testing.T) {
	repo := newTicketRepo()

	ticket, err := repo.Create(validTicketInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, models.TicketStatusToDo, ticket.Status)
	assert.Empty(t, ticket.AssigneeID)
	assert.Empty(t, ticket.SprintID)
	assert.Empty(t, ticket.EpicID)
	assert.Equal(t, ticket.CreatedAt, ticket.UpdatedAt)
}

func TestCreateTicket_FreshIDs(t *testing.T) {
	repo := newTicketRepo()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		ticket, err := repo.Create(validTicketInput())
		require.NoError(t, err)
		assert.False(t, seen[ticket.ID], "id %q issued twice", ticket.ID)
		seen[ticket.ID] = true
	}
}

func TestCreateTicket_NonPositiveStoryPoints(t *testing.T) {
	repo := newTicketRepo()

	for _, points := range []int{0, -1} {
		input := validTicketInput()
		input.StoryPoints = points
		_, err := repo.Create(input)
		assert.True(t, apperrors.IsValidation(err), "storyPoints=%d should be rejected", points)
	}
}

func TestCreateTicket_UnknownTypeAndStatus(t *testing.T) {
	repo := newTicketRepo()

	input := validTicketInput()
	input.Type = "Spike"
	_, err := repo.Create(input)
	assert.True(t, apperrors.IsValidation(err))

	input = validTicketInput()
	input.Status = "Archived"
	_, err = repo.Create(input)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateTicket_MergesFields(t *testing.T) {
	repo := newTicketRepo()
	ticket, err := repo.Create(validTicketInput())
	require.NoError(t, err)

	title := "Fix login bug for real"
	status := models.TicketStatusInProgress
	updated, err := repo.Update(ticket.ID, UpdateTicketInput{Title: &title, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.Equal(t, status, updated.Status)
	// untouched fields survive the merge
	assert.Equal(t, ticket.Description, updated.Description)
	assert.Equal(t, ticket.StoryPoints, updated.StoryPoints)
}

func TestUpdateTicket_ImmutableFields(t *testing.T) {
	repo := newTicketRepo()
	ticket, err := repo.Create(validTicketInput())
	require.NoError(t, err)

	title := "renamed"
	updated, err := repo.Update(ticket.ID, UpdateTicketInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, ticket.ID, updated.ID)
	assert.Equal(t, ticket.CreatedAt, updated.CreatedAt)
	assert.Equal(t, ticket.CreatedBy, updated.CreatedBy)
	assert.False(t, updated.UpdatedAt.Before(ticket.UpdatedAt))
}

func TestUpdateTicket_ClearsOptionalReference(t *testing.T) {
	repo := newTicketRepo()
	input := validTicketInput()
	input.AssigneeID = "u2"
	ticket, err := repo.Create(input)
	require.NoError(t, err)

	empty := ""
	updated, err := repo.Update(ticket.ID, UpdateTicketInput{AssigneeID: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.AssigneeID)
}

func TestUpdateTicket_NotFound(t *testing.T) {
	repo := newTicketRepo()

	_, err := repo.Update("missing", UpdateTicketInput{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteTicket(t *testing.T) {
	repo := newTicketRepo()
	ticket, err := repo.Create(validTicketInput())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ticket.ID))
	_, err = repo.Find(ticket.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// deleting again reports not-found rather than exploding
	assert.True(t, apperrors.IsNotFound(repo.Delete(ticket.ID)))
}

func TestClearEpic(t *testing.T) {
	repo := newTicketRepo()
	input := validTicketInput()
	input.EpicID = "e1"
	first, err := repo.Create(input)
	require.NoError(t, err)
	second, err := repo.Create(validTicketInput())
	require.NoError(t, err)

	repo.ClearEpic("e1")

	cleared, err := repo.Find(first.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.EpicID)

	untouched, err := repo.Find(second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.UpdatedAt, untouched.UpdatedAt)
}

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequentialGenerator(1)
	repo := NewTicketRepository(gen, nil)

	first, err := repo.Create(validTicketInput())
	require.NoError(t, err)
	second, err := repo.Create(validTicketInput())
	require.NoError(t, err)

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, 3, gen.Peek())
}

func TestAll_PreservesOrderAndCopies(t *testing.T) {
	repo := newTicketRepo()
	var ids []string
	for i := 0; i < 5; i++ {
		ticket, err := repo.Create(validTicketInput())
		require.NoError(t, err)
		ids = append(ids, ticket.ID)
	}

	all := repo.All()
	require.Len(t, all, 5)
	for i, ticket := range all {
		assert.Equal(t, ids[i], ticket.ID)
	}

	// mutating the returned slice does not leak into the repository
	all[0].Title = "mutated"
	fresh, err := repo.Find(ids[0])
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.Title)
}
