package model

import "time"

// Team represents a team with a denormalized roster of athlete ids.
// Membership lives on the team record, not on the user.
type Team struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	AthleteIDs []string  `json:"athleteIds"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
