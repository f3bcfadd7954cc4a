// Package clock provides monotonic time sources for the frame loop.
package clock

import "time"

// Clock reports monotonic time elapsed since some fixed origin.
type Clock interface {
	Now() time.Duration
}

// System is a Clock backed by the process monotonic clock.
type System struct {
	start time.Time
}

// NewSystem returns a System clock whose origin is the moment of the call.
func NewSystem() *System {
	return &System{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (s *System) Now() time.Duration {
	return time.Since(s.start)
}

// Manual is a Clock that only moves when told to. Used for simulation and tests.
type Manual struct {
	now time.Duration
}

// Now returns the current simulated time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (m *Manual) Advance(d time.Duration) {
	if d > 0 {
		m.now += d
	}
}
