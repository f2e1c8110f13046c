// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/repository"
)

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SignupRequest represents the request body for signing up.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// SignupResponse wraps the created user.
type SignupResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
}

// ProfileResponse wraps a profile read.
type ProfileResponse struct {
	Profile *model.User `json:"profile"`
}

// AthleteListResponse wraps the athlete listing.
type AthleteListResponse struct {
	Athletes []*model.User `json:"athletes"`
}

// CreateEventRequest represents the request body for creating an event.
type CreateEventRequest struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Location string `json:"location,omitempty"`
	TeamID   string `json:"teamId,omitempty"`
}

// UpdateEventRequest represents a partial event update. Absent fields
// leave the stored values untouched.
type UpdateEventRequest struct {
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Location *string `json:"location,omitempty"`
	TeamID   *string `json:"teamId,omitempty"`
}

// ToPatch converts the request to a repository patch.
func (r *UpdateEventRequest) ToPatch() repository.EventPatch {
	return repository.EventPatch{
		Name:     r.Name,
		Type:     r.Type,
		Date:     r.Date,
		Time:     r.Time,
		Location: r.Location,
		TeamID:   r.TeamID,
	}
}

// EventResponse wraps a single event mutation result.
type EventResponse struct {
	Success bool         `json:"success"`
	Event   *model.Event `json:"event"`
}

// EventListResponse wraps the event listing.
type EventListResponse struct {
	Events []*model.Event `json:"events"`
}

// CreateTeamRequest represents the request body for creating a team.
type CreateTeamRequest struct {
	Name       string   `json:"name" validate:"required"`
	AthleteIDs []string `json:"athleteIds,omitempty"`
}

// UpdateTeamRequest represents a partial team update.
type UpdateTeamRequest struct {
	Name       *string   `json:"name,omitempty"`
	AthleteIDs *[]string `json:"athleteIds,omitempty"`
}

// ToPatch converts the request to a repository patch.
func (r *UpdateTeamRequest) ToPatch() repository.TeamPatch {
	return repository.TeamPatch{
		Name:       r.Name,
		AthleteIDs: r.AthleteIDs,
	}
}

// TeamResponse wraps a single team mutation result.
type TeamResponse struct {
	Success bool        `json:"success"`
	Team    *model.Team `json:"team"`
}

// TeamListResponse wraps the team listing.
type TeamListResponse struct {
	Teams []*model.Team `json:"teams"`
}

// MarkAttendanceRequest represents the request body for marking
// attendance. The user id never appears here; it comes from the
// verified credential.
type MarkAttendanceRequest struct {
	EventID string `json:"eventId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// MarkAttendanceResponse wraps the written attendance record.
type MarkAttendanceResponse struct {
	Success    bool              `json:"success"`
	Attendance *model.Attendance `json:"attendance"`
}

// RosterResponse wraps the per-event reconstructed attendance list.
type RosterResponse struct {
	Attendance []*model.RosterEntry `json:"attendance"`
}

// EnrichedAttendanceResponse wraps the cross-event enriched records.
type EnrichedAttendanceResponse struct {
	Attendance []*model.EnrichedAttendance `json:"attendance"`
}

// SuccessResponse is the bare acknowledgement for deletes.
type SuccessResponse struct {
	Success bool `json:"success"`
}
