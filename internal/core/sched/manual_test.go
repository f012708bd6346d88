package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	manual := NewManual()
	var order []string
	manual.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	manual.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	manual.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })

	manual.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"a"}, order)

	manual.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 30*time.Millisecond, manual.Elapsed())
	assert.Zero(t, manual.Pending())
}

func TestManualStopPreventsCallback(t *testing.T) {
	manual := NewManual()
	fired := false
	timer := manual.AfterFunc(time.Second, func() { fired = true })

	require.Equal(t, 1, manual.Pending())
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports already stopped")

	manual.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManualChainedTimerWithinWindow(t *testing.T) {
	manual := NewManual()
	fired := 0
	manual.AfterFunc(10*time.Millisecond, func() {
		fired++
		manual.AfterFunc(10*time.Millisecond, func() { fired++ })
	})

	manual.Advance(25 * time.Millisecond)
	assert.Equal(t, 2, fired)
}

func TestDispatchedHandsCallbackToDo(t *testing.T) {
	manual := NewManual()
	var queued []func()
	scheduler := Dispatched(manual, func(fn func()) { queued = append(queued, fn) })

	ran := false
	scheduler.AfterFunc(time.Millisecond, func() { ran = true })
	manual.Advance(time.Millisecond)

	require.Len(t, queued, 1)
	assert.False(t, ran)
	queued[0]()
	assert.True(t, ran)
}

func TestRealSchedulerStop(t *testing.T) {
	timer := Real().AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
}
