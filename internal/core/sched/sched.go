// Package sched provides cancellable one-shot timers for the carousel state
// machines, with a real and a manually advanced implementation.
package sched

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the timer
	// before it fired.
	Stop() bool
}

// Scheduler runs a callback after a delay.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Timer
}

type realScheduler struct{}

// Real returns a Scheduler backed by time.AfterFunc.
func Real() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}

type dispatched struct {
	base Scheduler
	do   func(func())
}

// Dispatched wraps a scheduler so that every callback is handed to do instead
// of running on the timer goroutine. UI code passes fyne.Do here.
func Dispatched(base Scheduler, do func(func())) Scheduler {
	if do == nil {
		return base
	}
	return &dispatched{base: base, do: do}
}

func (scheduler *dispatched) AfterFunc(delay time.Duration, fn func()) Timer {
	return scheduler.base.AfterFunc(delay, func() {
		scheduler.do(fn)
	})
}
