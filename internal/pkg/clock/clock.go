// Package clock abstracts wall-clock reads so date cutoffs such as
// departure and package validity checks stay testable.
package clock

import "time"

// Clock yields the current instant. Production code takes this
// interface; tests substitute a MockClock pinned to a known time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced Clock for tests. Not safe for
// concurrent use.
type MockClock struct {
	at time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{at: t}
}

func (m *MockClock) Now() time.Time {
	return m.at
}

// Set pins the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.at = t
}

// Add moves the clock forward (or back, with a negative d).
func (m *MockClock) Add(d time.Duration) {
	m.at = m.at.Add(d)
}
