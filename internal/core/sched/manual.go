package sched

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler whose clock only moves when Advance is called.
// Callbacks run synchronously inside Advance, in deadline order.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	owner    *Manual
	deadline time.Duration
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

// NewManual returns a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc schedules fn to run once the clock has advanced by delay.
func (manual *Manual) AfterFunc(delay time.Duration, fn func()) Timer {
	if delay < 0 {
		delay = 0
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.seq++
	timer := &manualTimer{owner: manual, deadline: manual.now + delay, seq: manual.seq, fn: fn}
	manual.pending = append(manual.pending, timer)
	return timer
}

// Advance moves the clock forward, firing every timer that comes due.
// Timers scheduled by a callback fire in the same call if their deadline is
// within the advanced window.
func (manual *Manual) Advance(delta time.Duration) {
	manual.mu.Lock()
	target := manual.now + delta
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		next := manual.nextDueLocked(target)
		if next == nil {
			manual.now = target
			manual.mu.Unlock()
			return
		}
		manual.now = next.deadline
		next.fired = true
		manual.mu.Unlock()

		next.fn()
	}
}

// Elapsed returns how far the clock has been advanced.
func (manual *Manual) Elapsed() time.Duration {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (manual *Manual) Pending() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	count := 0
	for _, timer := range manual.pending {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

func (manual *Manual) nextDueLocked(target time.Duration) *manualTimer {
	live := manual.pending[:0]
	for _, timer := range manual.pending {
		if !timer.stopped && !timer.fired {
			live = append(live, timer)
		}
	}
	manual.pending = live

	sort.SliceStable(manual.pending, func(i, j int) bool {
		if manual.pending[i].deadline == manual.pending[j].deadline {
			return manual.pending[i].seq < manual.pending[j].seq
		}
		return manual.pending[i].deadline < manual.pending[j].deadline
	})
	if len(manual.pending) == 0 || manual.pending[0].deadline > target {
		return nil
	}
	return manual.pending[0]
}

func (timer *manualTimer) Stop() bool {
	timer.owner.mu.Lock()
	defer timer.owner.mu.Unlock()
	if timer.stopped || timer.fired {
		return false
	}
	timer.stopped = true
	return true
}
