package model

import "time"

// Event represents a scheduled team event such as a practice or game.
// Date and Time are kept as the caller-supplied calendar date and
// wall-clock time strings; ordering and formatting are presentation
// concerns.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	TeamID    string    `json:"teamId,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
