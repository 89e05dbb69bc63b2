package models

import "time"

// Epic is a thematic grouping label applied to tickets. Color is a display
// tag (a hex value the frontend renders as the epic's badge).
type Epic struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
