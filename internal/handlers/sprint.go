package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/repository"
	"github.com/sprintboard/sprintboard/internal/store"
)

// SprintHandler exposes sprint operations over the store façade.
type SprintHandler struct {
	store *store.Store
}

// NewSprintHandler creates a new SprintHandler.
func NewSprintHandler(st *store.Store) *SprintHandler {
	return &SprintHandler{store: st}
}

// ListSprints returns the full sprint collection.
func (h *SprintHandler) ListSprints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sprints": h.store.Sprints(),
	})
}

// CreateSprint creates a new, inactive sprint.
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	type CreateSprintRequest struct {
		Name      string    `json:"name" binding:"required"`
		StartDate time.Time `json:"startDate" binding:"required"`
		EndDate   time.Time `json:"endDate" binding:"required"`
	}

	var req CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	sprint, err := h.store.CreateSprint(repository.CreateSprintInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sprint)
}

// UpdateSprint applies a partial update to a sprint.
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	type UpdateSprintRequest struct {
		Name      *string    `json:"name"`
		StartDate *time.Time `json:"startDate"`
		EndDate   *time.Time `json:"endDate"`
	}

	var req UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	sprint, err := h.store.UpdateSprint(c.Param("id"), repository.UpdateSprintInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// ActivateSprint makes the target sprint the single active one.
func (h *SprintHandler) ActivateSprint(c *gin.Context) {
	if err := h.store.SetActiveSprint(c.Param("id")); err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sprint activated",
	})
}

// DeleteSprint removes a sprint; its tickets return to the backlog.
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	if err := h.store.DeleteSprint(c.Param("id")); err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sprint deleted",
	})
}
