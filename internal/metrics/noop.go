package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncSignup is a no-op.
func (n *NoopRecorder) IncSignup() {}

// IncEventCreated is a no-op.
func (n *NoopRecorder) IncEventCreated() {}

// IncEventUpdated is a no-op.
func (n *NoopRecorder) IncEventUpdated() {}

// IncEventDeleted is a no-op.
func (n *NoopRecorder) IncEventDeleted() {}

// IncTeamCreated is a no-op.
func (n *NoopRecorder) IncTeamCreated() {}

// IncTeamUpdated is a no-op.
func (n *NoopRecorder) IncTeamUpdated() {}

// IncAttendanceMarked is a no-op.
func (n *NoopRecorder) IncAttendanceMarked() {}
