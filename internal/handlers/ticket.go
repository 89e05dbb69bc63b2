package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/middleware"
	"github.com/sprintboard/sprintboard/internal/models"
	"github.com/sprintboard/sprintboard/internal/repository"
	"github.com/sprintboard/sprintboard/internal/store"
)

// TicketHandler exposes ticket CRUD over the store façade.
type TicketHandler struct {
	store *store.Store
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(st *store.Store) *TicketHandler {
	return &TicketHandler{store: st}
}

// ListTickets returns the full ticket collection.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tickets": h.store.Tickets(),
	})
}

// GetTicket returns a single ticket by id.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.store.FindTicket(c.Param("id"))
	if err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// CreateTicket creates a new ticket. The creator is the session user; a
// createdBy value in the payload is not accepted.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTicketRequest struct {
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description"`
		StoryPoints int                 `json:"storyPoints" binding:"required"`
		Type        models.TicketType   `json:"type" binding:"required"`
		Status      models.TicketStatus `json:"status"`
		AssigneeID  string              `json:"assigneeId"`
		SprintID    string              `json:"sprintId"`
		EpicID      string              `json:"epicId"`
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Status == "" {
		req.Status = models.TicketStatusToDo
	}

	ticket, err := h.store.CreateTicket(repository.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		StoryPoints: req.StoryPoints,
		Type:        req.Type,
		Status:      req.Status,
		CreatedBy:   userID,
		AssigneeID:  req.AssigneeID,
		SprintID:    req.SprintID,
		EpicID:      req.EpicID,
	})
	if err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// UpdateTicket applies a partial update. Fields absent from the payload
// are left untouched; id, createdAt and createdBy cannot be changed.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	type UpdateTicketRequest struct {
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		StoryPoints *int                 `json:"storyPoints"`
		Type        *models.TicketType   `json:"type"`
		Status      *models.TicketStatus `json:"status"`
		AssigneeID  *string              `json:"assigneeId"`
		SprintID    *string              `json:"sprintId"`
		EpicID      *string              `json:"epicId"`
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.store.UpdateTicket(c.Param("id"), repository.UpdateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		StoryPoints: req.StoryPoints,
		Type:        req.Type,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
		SprintID:    req.SprintID,
		EpicID:      req.EpicID,
	})
	if err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// DeleteTicket removes a ticket.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.store.DeleteTicket(c.Param("id")); err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket deleted",
	})
}

// MoveTicket assigns the ticket to a sprint or, with an empty sprintId,
// back to the backlog.
func (h *TicketHandler) MoveTicket(c *gin.Context) {
	type MoveTicketRequest struct {
		SprintID string `json:"sprintId"`
	}

	var req MoveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.store.MoveTicketToSprint(c.Param("id"), req.SprintID)
	if err != nil {
		apierrors.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
