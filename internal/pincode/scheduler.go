package pincode

import "time"

// Task is a scheduled, stoppable callback.
// *time.Timer satisfies this interface.
type Task interface {
	Stop() bool
}

// Scheduler schedules callbacks to be run after a delay.
//
// The Decorator is not safe for concurrent use, so a Scheduler used with it
// MUST run the callbacks on the same sequence that calls the Decorator.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// LoopScheduler is a Scheduler that, once a delay has passed, hands the
// callback to a post function instead of running it itself.
// The post function is expected to enqueue the callback on the single
// processing loop of the owner (e.g. a controller's event loop).
type LoopScheduler struct {
	post func(func())
}

// NewLoopScheduler returns a pointer to a new LoopScheduler posting callbacks
// via the given function.
func NewLoopScheduler(post func(func())) *LoopScheduler {
	return &LoopScheduler{post: post}
}

// AfterFunc schedules f to be posted after d.
func (s *LoopScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, func() { s.post(f) })
}
