package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/repository"
	"github.com/sprintboard/sprintboard/internal/store"
)

// EpicHandler exposes epic operations over the store façade.
type EpicHandler struct {
	store *store.Store
}

// NewEpicHandler creates a new EpicHandler.
func NewEpicHandler(st *store.Store) *EpicHandler {
	return &EpicHandler{store: st}
}

// ListEpics returns the full epic collection.
func (h *EpicHandler) ListEpics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"epics": h.store.Epics(),
	})
}

// CreateEpic creates a new epic.
func (h *EpicHandler) CreateEpic(c *gin.Context) {
	type CreateEpicRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}

	var req CreateEpicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	epic, err := h.store.CreateEpic(repository.CreateEpicInput{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, epic)
}

// UpdateEpic applies a partial update to an epic.
func (h *EpicHandler) UpdateEpic(c *gin.Context) {
	type UpdateEpicRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Color       *string `json:"color"`
	}

	var req UpdateEpicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	epic, err := h.store.UpdateEpic(c.Param("id"), repository.UpdateEpicInput{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, epic)
}

// DeleteEpic removes an epic and clears it from every referencing ticket.
func (h *EpicHandler) DeleteEpic(c *gin.Context) {
	if err := h.store.DeleteEpic(c.Param("id")); err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Epic deleted",
	})
}
