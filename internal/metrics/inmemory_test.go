package metrics

import (
	"sync"
	"testing"
)

func TestInMemoryRecorder_Counts(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()

	rec.IncSignup()
	rec.IncSignup()
	rec.IncEventCreated()
	rec.IncAttendanceMarked()

	snap := rec.Snapshot()
	if snap.Signups != 2 {
		t.Errorf("Signups = %d, want 2", snap.Signups)
	}
	if snap.EventsCreated != 1 {
		t.Errorf("EventsCreated = %d, want 1", snap.EventsCreated)
	}
	if snap.AttendanceMarked != 1 {
		t.Errorf("AttendanceMarked = %d, want 1", snap.AttendanceMarked)
	}
	if snap.EventsDeleted != 0 {
		t.Errorf("EventsDeleted = %d, want 0", snap.EventsDeleted)
	}
}

func TestInMemoryRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.IncAttendanceMarked()
		}()
	}
	wg.Wait()

	if snap := rec.Snapshot(); snap.AttendanceMarked != 50 {
		t.Errorf("AttendanceMarked = %d, want 50", snap.AttendanceMarked)
	}
}
