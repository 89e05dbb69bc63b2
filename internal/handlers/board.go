package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sprintboard/sprintboard/internal/dto"
	apierrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/middleware"
	"github.com/sprintboard/sprintboard/internal/services"
	"github.com/sprintboard/sprintboard/internal/views"
)

// BoardHandler serves the derived presentation views: the active sprint
// board and the filtered backlog.
type BoardHandler struct {
	board *services.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(board *services.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

// SprintBoard returns the active sprint's tickets grouped by assignee,
// with the current user's tickets split out.
func (h *BoardHandler) SprintBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	board, err := h.board.SprintBoard(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSprint) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToSprintBoardResponse(board))
}

// Backlog returns the backlog filtered by title substring, epic and
// assignee. assignee_id accepts a user id or the literal "unassigned".
func (h *BoardHandler) Backlog(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	filter := views.BacklogFilter{
		Title:      c.Query("title"),
		EpicID:     c.Query("epic_id"),
		AssigneeID: c.Query("assignee_id"),
	}

	c.JSON(http.StatusOK, dto.ToBacklogResponse(h.board.Backlog(userID, filter)))
}
