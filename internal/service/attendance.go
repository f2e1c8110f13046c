package service

import (
	"context"
	"errors"
	"time"

	"github.com/rollcall/rollcall/internal/metrics"
	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/repository"
)

// ErrInvalidStatus is returned when a status is outside the closed set.
var ErrInvalidStatus = errors.New("invalid attendance status")

// AttendanceService handles attendance marking and reconstruction.
type AttendanceService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService(repo *repository.Repository, recorder metrics.Recorder) *AttendanceService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AttendanceService{repo: repo, metrics: recorder}
}

// Mark records the caller's own attendance for an event. The user id
// comes from the verified credential, never from the payload, so an
// athlete can only ever write their own record. Remarking overwrites
// the previous status and refreshes markedAt (last-write-wins).
//
// Status must be one of the three closed values; free-text statuses are
// rejected rather than stored.
func (s *AttendanceService) Mark(ctx context.Context, userID, eventID, status string) (*model.Attendance, error) {
	if eventID == "" || status == "" {
		return nil, ErrMissingFields
	}

	st := model.Status(status)
	if !st.IsValid() {
		return nil, ErrInvalidStatus
	}

	att := &model.Attendance{
		UserID:   userID,
		EventID:  eventID,
		Status:   st,
		MarkedAt: time.Now().UTC(),
	}

	if err := s.repo.SetAttendance(ctx, att); err != nil {
		return nil, err
	}

	s.metrics.IncAttendanceMarked()
	return att, nil
}

// ForEvent returns the reconstructed attendance list for an event:
// every athlete exactly once, defaulting to unknown. The event id is
// not checked for existence; reads for a deleted event still return the
// roster (with any orphaned records applied).
func (s *AttendanceService) ForEvent(ctx context.Context, eventID string) ([]*model.RosterEntry, error) {
	return s.repo.GetAttendanceForEvent(ctx, eventID)
}

// AllEnriched returns every attendance record enriched with user info,
// the feed for cross-event aggregate statistics. Rates and totals are
// computed by the caller.
func (s *AttendanceService) AllEnriched(ctx context.Context) ([]*model.EnrichedAttendance, error) {
	return s.repo.ListAllAttendanceEnriched(ctx)
}
