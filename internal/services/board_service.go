package services

import (
	"errors"

	"github.com/sprintboard/sprintboard/internal/models"
	"github.com/sprintboard/sprintboard/internal/store"
	"github.com/sprintboard/sprintboard/internal/users"
	"github.com/sprintboard/sprintboard/internal/views"
)

var ErrNoActiveSprint = errors.New("no active sprint")

// BoardService assembles the presentation views of the current snapshot:
// the active sprint board grouped by assignee and the filtered backlog
// split into the current user's tickets and everyone else's.
type BoardService struct {
	store *store.Store
	users *users.Directory
}

// NewBoardService creates a new BoardService.
func NewBoardService(st *store.Store, dir *users.Directory) *BoardService {
	return &BoardService{store: st, users: dir}
}

// SprintBoard is the active sprint's tickets grouped by assignee.
type SprintBoard struct {
	Sprint models.Sprint
	Groups views.BoardGroups
}

// SprintBoard returns the board of the active sprint for the given user.
func (s *BoardService) SprintBoard(currentUserID string) (SprintBoard, error) {
	sprint, ok := s.store.ActiveSprint()
	if !ok {
		return SprintBoard{}, ErrNoActiveSprint
	}

	tickets := views.TicketsInSprint(s.store.Tickets(), sprint.ID)
	return SprintBoard{
		Sprint: sprint,
		Groups: views.GroupByAssignee(tickets, s.users.All(), currentUserID),
	}, nil
}

// Backlog is the filtered backlog split relative to the current user.
type Backlog struct {
	Mine   []models.Ticket
	Others []models.Ticket
}

// Backlog returns the backlog narrowed by the filter, split into tickets
// the user created or is assigned to and the rest.
func (s *BoardService) Backlog(currentUserID string, filter views.BacklogFilter) Backlog {
	backlog := views.FilterBacklog(views.BacklogTickets(s.store.Tickets()), filter)
	return Backlog{
		Mine:   views.OwnedOrAssignedTo(backlog, currentUserID),
		Others: views.NotOwnedOrAssignedTo(backlog, currentUserID),
	}
}
