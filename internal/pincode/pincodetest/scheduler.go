// Package pincodetest provides helpers for testing code using decorators.
package pincodetest

import (
	"sort"
	"time"

	"github.com/ja-he/pinpad/internal/pincode"
)

// ManualScheduler is a pincode.Scheduler on a manually advanced clock.
type ManualScheduler struct {
	now   time.Duration
	order int
	tasks []*manualTask
}

type manualTask struct {
	due     time.Duration
	order   int
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTask) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

// AfterFunc schedules f to be called once the clock was advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) pincode.Task {
	s.order++
	t := &manualTask{due: s.now + d, order: s.order, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward, firing all due tasks in due order.
// Tasks scheduled by fired tasks are fired as well, if they become due.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		due := s.due(target)
		if len(due) == 0 {
			break
		}
		t := due[0]
		s.now = t.due
		t.fired = true
		t.f()
	}
	s.now = target
}

// FireStopped fires the i-th scheduled task despite it having been stopped,
// as happens when a timer has already expired and its callback is queued.
func (s *ManualScheduler) FireStopped(i int) {
	s.tasks[i].f()
}

// Pending returns the number of tasks neither stopped nor fired.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Scheduled returns the number of tasks ever scheduled.
func (s *ManualScheduler) Scheduled() int { return len(s.tasks) }

func (s *ManualScheduler) due(until time.Duration) []*manualTask {
	var result []*manualTask
	for _, t := range s.tasks {
		if !t.stopped && !t.fired && t.due <= until {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].due == result[j].due {
			return result[i].order < result[j].order
		}
		return result[i].due < result[j].due
	})
	return result
}
