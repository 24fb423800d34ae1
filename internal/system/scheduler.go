// internal/system/scheduler.go
package system

import (
	"sort"
	"time"
)

// TimerKind names a deferred transition. At most one timer of each kind is
// pending at a time.
type TimerKind string

const (
	TimerRoundAdvance TimerKind = "round_advance"
	TimerBoostExpiry  TimerKind = "boost_expiry"
	TimerReturnToMenu TimerKind = "return_to_menu"
)

// Timer is a scheduled event against the simulation clock.
type Timer struct {
	Kind  TimerKind
	DueAt time.Duration
	// FiresWhilePaused lets the timer run out while the simulation is
	// paused. All built-in timers set it.
	FiresWhilePaused bool
}

// Scheduler holds pending timers. It is polled at the start of every tick,
// paused or not, so pause behavior is a per-timer policy.
type Scheduler struct {
	timers []Timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule adds a timer, replacing any pending timer of the same kind.
func (s *Scheduler) Schedule(kind TimerKind, dueAt time.Duration, firesWhilePaused bool) {
	s.Cancel(kind)
	s.timers = append(s.timers, Timer{Kind: kind, DueAt: dueAt, FiresWhilePaused: firesWhilePaused})
}

// Cancel drops the pending timer of kind. It reports whether one existed.
func (s *Scheduler) Cancel(kind TimerKind) bool {
	for i, t := range s.timers {
		if t.Kind == kind {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAllExcept drops every pending timer whose kind is not listed.
func (s *Scheduler) CancelAllExcept(keep ...TimerKind) {
	kept := s.timers[:0]
	for _, t := range s.timers {
		for _, k := range keep {
			if t.Kind == k {
				kept = append(kept, t)
				break
			}
		}
	}
	s.timers = kept
}

// Pending returns the timer of kind, if any.
func (s *Scheduler) Pending(kind TimerKind) (Timer, bool) {
	for _, t := range s.timers {
		if t.Kind == kind {
			return t, true
		}
	}
	return Timer{}, false
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Due removes and returns every timer that has run out at now, earliest
// first. While paused, timers without FiresWhilePaused stay pending.
func (s *Scheduler) Due(now time.Duration, paused bool) []Timer {
	var due []Timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.DueAt <= now && (!paused || t.FiresWhilePaused) {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	s.timers = kept
	sort.SliceStable(due, func(i, j int) bool { return due[i].DueAt < due[j].DueAt })
	return due
}
