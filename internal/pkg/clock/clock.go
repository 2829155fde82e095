// Package clock abstracts wall time so campaign liveness windows can be
// pinned in tests.
package clock

import "time"

// Clock supplies the current time for liveness checks and timestamps.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant until moved with Advance.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward, e.g. across a campaign window edge.
func (c *MockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
