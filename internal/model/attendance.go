package model

import "time"

// Status represents an attendance status.
type Status string

const (
	StatusHere    Status = "here"
	StatusAbsent  Status = "absent"
	StatusUnknown Status = "unknown"
)

// IsValid checks if the status is one of the three closed values.
func (s Status) IsValid() bool {
	return s == StatusHere || s == StatusAbsent || s == StatusUnknown
}

// Attendance is a sparse per-(event, user) record. A record exists only
// once the athlete has explicitly acted; absence of a record means
// StatusUnknown by convention, not by stored value.
type Attendance struct {
	UserID   string    `json:"userId"`
	EventID  string    `json:"eventId"`
	Status   Status    `json:"status"`
	MarkedAt time.Time `json:"markedAt"`
}

// RosterEntry is one row of the reconstructed attendance list for an
// event: an athlete joined with their (possibly defaulted) status.
type RosterEntry struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status Status `json:"status"`
}

// EnrichedAttendance is an attendance record joined with the user's
// descriptive fields, used for cross-event aggregation.
type EnrichedAttendance struct {
	Attendance
	Name  string `json:"name"`
	Email string `json:"email"`
}
