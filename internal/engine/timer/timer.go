// Package timer schedules deferred callbacks on the frame loop.
//
// A Scheduler has no goroutines: callbacks only run inside Fire, which the
// owner calls once per tick. Every callback is stamped with the scheduler's
// generation when it is registered. Invalidate bumps the generation, so a
// callback registered before a reset can never run after it, even if a
// caller still holds its Handle.
package timer

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback.
type Handle struct {
	id         uint64
	generation uint64
}

// Generation returns the generation the callback was registered under.
func (h Handle) Generation() uint64 {
	return h.generation
}

type event struct {
	Handle
	due time.Duration
	fn  func()
}

// Scheduler runs callbacks once their due time has passed.
type Scheduler struct {
	generation uint64
	nextID     uint64
	pending    []event
}

// New creates an empty scheduler at generation 0.
func New() *Scheduler {
	return &Scheduler{}
}

// Generation returns the current generation.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Pending returns the number of callbacks waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// After registers fn to run at the first Fire with time >= now+delay.
func (s *Scheduler) After(now, delay time.Duration, fn func()) Handle {
	s.nextID++
	h := Handle{id: s.nextID, generation: s.generation}
	s.pending = append(s.pending, event{Handle: h, due: now + delay, fn: fn})
	return h
}

// Cancel removes a pending callback. It returns false if the callback
// already ran, was cancelled, or belongs to an older generation.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, ev := range s.pending {
		if ev.Handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Invalidate drops every pending callback and starts a new generation.
func (s *Scheduler) Invalidate() {
	s.generation++
	s.pending = s.pending[:0]
}

// Fire runs every due callback of the current generation in due order and
// returns how many ran. A callback that calls Invalidate stops the batch.
func (s *Scheduler) Fire(now time.Duration) int {
	var due []event
	kept := s.pending[:0]
	for _, ev := range s.pending {
		if ev.due <= now {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	s.pending = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })

	ran := 0
	for _, ev := range due {
		if ev.generation != s.generation {
			continue
		}
		ev.fn()
		ran++
	}
	return ran
}
