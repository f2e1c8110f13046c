package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rollcall/rollcall/internal/metrics"
	"github.com/rollcall/rollcall/internal/model"
	"github.com/rollcall/rollcall/internal/repository"
	"github.com/rollcall/rollcall/internal/store"
)

func newTestAttendanceService() (*AttendanceService, *repository.Repository) {
	repo := repository.New(store.NewMemory())
	return NewAttendanceService(repo, metrics.NewNoop()), repo
}

func TestAttendanceService_Mark(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestAttendanceService()

	att, err := svc.Mark(ctx, "user-1", "event-1", "here")
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}

	if att.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", att.UserID)
	}
	if att.Status != model.StatusHere {
		t.Errorf("Status = %s, want here", att.Status)
	}
	if att.MarkedAt.IsZero() {
		t.Error("MarkedAt is zero, want stamped time")
	}

	records, err := repo.ListEventAttendance(ctx, "event-1")
	if err != nil {
		t.Fatalf("ListEventAttendance() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestAttendanceService_MarkInvalidStatus(t *testing.T) {
	t.Parallel()

	tests := []string{"maybe", "HERE", "present", "yes"}

	for _, status := range tests {
		status := status
		t.Run(status, func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestAttendanceService()

			_, err := svc.Mark(context.Background(), "user-1", "event-1", status)
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("Mark(%q) error = %v, want ErrInvalidStatus", status, err)
			}
		})
	}
}

func TestAttendanceService_MarkMissingFields(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAttendanceService()
	ctx := context.Background()

	if _, err := svc.Mark(ctx, "user-1", "", "here"); !errors.Is(err, ErrMissingFields) {
		t.Errorf("Mark() without eventID error = %v, want ErrMissingFields", err)
	}
	if _, err := svc.Mark(ctx, "user-1", "event-1", ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("Mark() without status error = %v, want ErrMissingFields", err)
	}
}

func TestAttendanceService_RemarkOverwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestAttendanceService()

	if _, err := svc.Mark(ctx, "user-1", "event-1", "here"); err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	if _, err := svc.Mark(ctx, "user-1", "event-1", "absent"); err != nil {
		t.Fatalf("Mark() error = %v", err)
	}

	records, err := repo.ListEventAttendance(ctx, "event-1")
	if err != nil {
		t.Fatalf("ListEventAttendance() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (overwrite)", len(records))
	}
	if records[0].Status != model.StatusAbsent {
		t.Errorf("Status = %s, want absent", records[0].Status)
	}
}

func TestAttendanceService_ForEventIncludesSilentAthletes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestAttendanceService()

	if err := repo.CreateProfile(ctx, &model.User{
		ID: "user-1", Email: "a@x.com", Name: "A", Role: model.RoleAthlete,
	}); err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}

	entries, err := svc.ForEvent(ctx, "event-1")
	if err != nil {
		t.Fatalf("ForEvent() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Status != model.StatusUnknown {
		t.Errorf("Status = %s, want unknown", entries[0].Status)
	}
}
