// Package repository provides persistence for profiles, events, teams,
// and attendance records over the key-value store.
package repository

import (
	"github.com/rollcall/rollcall/internal/store"
)

// Key prefixes for each record kind. Every record is addressable by a
// prefix-scannable string key.
const (
	userKeyPrefix       = "user:"
	eventKeyPrefix      = "event:"
	teamKeyPrefix       = "team:"
	attendanceKeyPrefix = "attendance:"
)

// Repository bundles the entity repositories over a single store.
type Repository struct {
	store store.Store
}

// New creates a Repository on the given store.
func New(s store.Store) *Repository {
	return &Repository{store: s}
}

func userKey(id string) string {
	return userKeyPrefix + id
}

func eventKey(id string) string {
	return eventKeyPrefix + id
}

func teamKey(id string) string {
	return teamKeyPrefix + id
}

// attendanceKey addresses the single record for one user at one event.
func attendanceKey(eventID, userID string) string {
	return attendanceKeyPrefix + eventID + ":" + userID
}

// attendanceEventPrefix scans all attendance records of one event.
func attendanceEventPrefix(eventID string) string {
	return attendanceKeyPrefix + eventID + ":"
}
