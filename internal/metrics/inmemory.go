package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Signups          uint64
	EventsCreated    uint64
	EventsUpdated    uint64
	EventsDeleted    uint64
	TeamsCreated     uint64
	TeamsUpdated     uint64
	AttendanceMarked uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	signups          uint64
	eventsCreated    uint64
	eventsUpdated    uint64
	eventsDeleted    uint64
	teamsCreated     uint64
	teamsUpdated     uint64
	attendanceMarked uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		Signups:          atomic.LoadUint64(&m.signups),
		EventsCreated:    atomic.LoadUint64(&m.eventsCreated),
		EventsUpdated:    atomic.LoadUint64(&m.eventsUpdated),
		EventsDeleted:    atomic.LoadUint64(&m.eventsDeleted),
		TeamsCreated:     atomic.LoadUint64(&m.teamsCreated),
		TeamsUpdated:     atomic.LoadUint64(&m.teamsUpdated),
		AttendanceMarked: atomic.LoadUint64(&m.attendanceMarked),
	}
}

// IncSignup increments the signup counter.
func (m *InMemoryRecorder) IncSignup() {
	atomic.AddUint64(&m.signups, 1)
}

// IncEventCreated increments the event created counter.
func (m *InMemoryRecorder) IncEventCreated() {
	atomic.AddUint64(&m.eventsCreated, 1)
}

// IncEventUpdated increments the event updated counter.
func (m *InMemoryRecorder) IncEventUpdated() {
	atomic.AddUint64(&m.eventsUpdated, 1)
}

// IncEventDeleted increments the event deleted counter.
func (m *InMemoryRecorder) IncEventDeleted() {
	atomic.AddUint64(&m.eventsDeleted, 1)
}

// IncTeamCreated increments the team created counter.
func (m *InMemoryRecorder) IncTeamCreated() {
	atomic.AddUint64(&m.teamsCreated, 1)
}

// IncTeamUpdated increments the team updated counter.
func (m *InMemoryRecorder) IncTeamUpdated() {
	atomic.AddUint64(&m.teamsUpdated, 1)
}

// IncAttendanceMarked increments the attendance marked counter.
func (m *InMemoryRecorder) IncAttendanceMarked() {
	atomic.AddUint64(&m.attendanceMarked, 1)
}
