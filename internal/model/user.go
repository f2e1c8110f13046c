// Package model defines domain entities for the application.
package model

// Role represents a user's role in the team.
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleCoach   Role = "coach"
)

// IsValid checks if the role is one of the two closed values.
// Any other value is rejected at signup.
func (r Role) IsValid() bool {
	return r == RoleAthlete || r == RoleCoach
}

// User represents a user profile record.
// Authentication is owned by the external identity provider; this record
// holds the descriptive fields only. The ID is immutable and is the join
// key across team rosters, event creators, and attendance records.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
