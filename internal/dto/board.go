package dto

import (
	"github.com/sprintboard/sprintboard/internal/models"
	"github.com/sprintboard/sprintboard/internal/services"
	"github.com/sprintboard/sprintboard/internal/views"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        models.UserRole `json:"role"`
	Initials    string          `json:"initials"`
	AvatarColor string          `json:"avatarColor"`
}

// AssigneeGroupDTO is one user's column on the sprint board
type AssigneeGroupDTO struct {
	User    UserDTO         `json:"user"`
	Tickets []models.Ticket `json:"tickets"`
}

// SprintBoardResponse is the active sprint board grouped by assignee
type SprintBoardResponse struct {
	Sprint models.Sprint      `json:"sprint"`
	Mine   []models.Ticket    `json:"mine"`
	Others []AssigneeGroupDTO `json:"others"`
}

// BacklogResponse is the filtered backlog split for the current user
type BacklogResponse struct {
	Mine   []models.Ticket `json:"mine"`
	Others []models.Ticket `json:"others"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		Initials:    user.Initials,
		AvatarColor: user.AvatarColor,
	}
}

// ToUserDTOs converts a user list
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}

// ToAssigneeGroupDTO converts a views group
func ToAssigneeGroupDTO(group views.AssigneeGroup) AssigneeGroupDTO {
	return AssigneeGroupDTO{
		User:    ToUserDTO(group.User),
		Tickets: group.Tickets,
	}
}

// ToSprintBoardResponse converts the service board to its response shape
func ToSprintBoardResponse(board services.SprintBoard) SprintBoardResponse {
	others := make([]AssigneeGroupDTO, len(board.Groups.Others))
	for i, g := range board.Groups.Others {
		others[i] = ToAssigneeGroupDTO(g)
	}
	return SprintBoardResponse{
		Sprint: board.Sprint,
		Mine:   board.Groups.Mine,
		Others: others,
	}
}

// ToBacklogResponse converts the service backlog to its response shape
func ToBacklogResponse(backlog services.Backlog) BacklogResponse {
	return BacklogResponse{
		Mine:   backlog.Mine,
		Others: backlog.Others,
	}
}
