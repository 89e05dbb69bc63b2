package storage

import (
	"time"

	"github.com/sprintboard/sprintboard/internal/models"
)

// SeedCollection returns the demo ticket set used when the local store has
// no prior state. The file backend starts empty instead; see FileStore.
func SeedCollection() Collection {
	return Collection{Tickets: SeedTickets(), NextID: 1}
}

// SeedTickets returns the demo tickets.
func SeedTickets() []models.Ticket {
	now := time.Now()
	return []models.Ticket{
		{
			ID:          "1",
			Title:       "Create user authentication",
			Description: "Implement Google OAuth login",
			StoryPoints: 5,
			Type:        models.TicketTypeStory,
			Status:      models.TicketStatusInProgress,
			CreatedBy:   "2",
			AssigneeID:  "2",
			SprintID:    "1",
			EpicID:      "1",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Fix login bug",
			Description: "Users cannot login with special characters in email",
			StoryPoints: 3,
			Type:        models.TicketTypeBug,
			Status:      models.TicketStatusToDo,
			CreatedBy:   "1",
			AssigneeID:  "3",
			EpicID:      "1",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "Design user dashboard",
			Description: "Create wireframes and mockups for the main user dashboard",
			StoryPoints: 8,
			Type:        models.TicketTypeStory,
			Status:      models.TicketStatusDone,
			CreatedBy:   "3",
			AssigneeID:  "3",
			SprintID:    "1",
			EpicID:      "2",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "4",
			Title:       "Setup CI/CD pipeline",
			Description: "Configure automated testing and deployment pipeline",
			StoryPoints: 13,
			Type:        models.TicketTypeTechnicalStory,
			Status:      models.TicketStatusInProgress,
			CreatedBy:   "4",
			AssigneeID:  "4",
			SprintID:    "1",
			EpicID:      "3",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "5",
			Title:       "Add dark mode support",
			Description: "Implement dark theme across the application",
			StoryPoints: 5,
			Type:        models.TicketTypeStory,
			Status:      models.TicketStatusReadyToMerge,
			CreatedBy:   "5",
			AssigneeID:  "5",
			SprintID:    "1",
			EpicID:      "2",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "6",
			Title:       "Performance optimization",
			Description: "Optimize application loading time and responsiveness",
			StoryPoints: 8,
			Type:        models.TicketTypeTechnicalStory,
			Status:      models.TicketStatusToDo,
			CreatedBy:   "2",
			AssigneeID:  "2",
			EpicID:      "3",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "7",
			Title:       "Mobile responsiveness",
			Description: "Ensure app works properly on mobile devices",
			StoryPoints: 5,
			Type:        models.TicketTypeStory,
			Status:      models.TicketStatusToDo,
			CreatedBy:   "3",
			AssigneeID:  "4",
			EpicID:      "2",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// SeedSprints returns the static sprint set the store initializes from.
// Sprints are not durably persisted; see the store façade.
func SeedSprints() []models.Sprint {
	return []models.Sprint{
		{
			ID:        "1",
			Name:      "Sprint 1",
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			IsActive:  true,
			CreatedAt: time.Now(),
		},
	}
}

// SeedEpics returns the static epic set the store initializes from.
func SeedEpics() []models.Epic {
	now := time.Now()
	return []models.Epic{
		{
			ID:          "1",
			Title:       "User Management",
			Description: "Complete user authentication and profile management system",
			Color:       "#1976d2",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Dashboard Enhancement",
			Description: "Improve dashboard functionality and user experience",
			Color:       "#2e7d32",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "Performance Optimization",
			Description: "Optimize application performance and loading times",
			Color:       "#ed6c02",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
