package interaction

import (
	"slices"
	"sync"
	"time"

	"brandcarousel/internal/core/sched"
)

// Config contains the debounce windows of the Machine.
type Config struct {
	BlurDebounce time.Duration
}

// Machine folds pointer hover, keyboard focus, click activation and manual
// scrolling into a single suspended flag and an active item.
type Machine struct {
	mu        sync.Mutex
	config    Config
	scheduler sched.Scheduler
	state     Snapshot
	items     map[string]struct{}

	blurTimer   sched.Timer
	blurGen     uint64
	manualTimer sched.Timer
	manualGen   uint64

	onChange []func(Snapshot)
	events   []chan Event
	closed   bool
}

// New creates a Machine. Items must be registered with SetItems before focus
// or activation has any effect.
func New(config Config, scheduler sched.Scheduler) *Machine {
	if config.BlurDebounce <= 0 {
		config.BlurDebounce = 120 * time.Millisecond
	}
	if scheduler == nil {
		scheduler = sched.Real()
	}
	return &Machine{
		config:    config,
		scheduler: scheduler,
		items:     map[string]struct{}{},
	}
}

// OnChange registers a callback invoked synchronously after every state change.
func (machine *Machine) OnChange(handler func(Snapshot)) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.onChange = append(machine.onChange, handler)
}

// Subscribe registers a new observer channel.
func (machine *Machine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.closed {
		close(ch)
		return ch
	}
	machine.events = append(machine.events, ch)
	return ch
}

// Snapshot returns the current state.
func (machine *Machine) Snapshot() Snapshot {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.state
}

// Suspended reports whether autoplay is currently held.
func (machine *Machine) Suspended() bool {
	return machine.Snapshot().Suspended()
}

// SetItems replaces the set of interactive item ids. An active item that is
// no longer part of the set is released.
func (machine *Machine) SetItems(ids []string) {
	machine.update(func(state *Snapshot) {
		machine.items = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			machine.items[id] = struct{}{}
		}
		if _, ok := machine.items[state.ActiveID]; !ok {
			state.ActiveID = ""
		}
	})
}

// PointerEnter records the pointer entering the viewport.
func (machine *Machine) PointerEnter() {
	machine.update(func(state *Snapshot) {
		state.PointerOver = true
	})
}

// PointerLeave records the pointer leaving the viewport.
func (machine *Machine) PointerLeave() {
	machine.update(func(state *Snapshot) {
		state.PointerOver = false
	})
}

// ItemFocus records keyboard focus landing on an interactive item. Any
// pending blur is cancelled.
func (machine *Machine) ItemFocus(id string) {
	machine.update(func(state *Snapshot) {
		if _, ok := machine.items[id]; !ok {
			return
		}
		machine.cancelBlurLocked(state)
		state.ActiveID = id
		state.FocusWithin = true
	})
}

// ItemBlur records focus leaving an item. The release is debounced so focus
// hopping between neighbours never lets autoplay resume in between.
func (machine *Machine) ItemBlur() {
	machine.update(func(state *Snapshot) {
		machine.cancelBlurLocked(state)
		machine.blurGen++
		gen := machine.blurGen
		state.BlurPending = true
		machine.blurTimer = machine.scheduler.AfterFunc(machine.config.BlurDebounce, func() {
			machine.expireBlur(gen)
		})
	})
}

// Activate toggles the active item.
func (machine *Machine) Activate(id string) {
	machine.update(func(state *Snapshot) {
		if _, ok := machine.items[id]; !ok {
			return
		}
		if state.ActiveID == id {
			state.ActiveID = ""
			return
		}
		state.ActiveID = id
	})
}

// HoldManual suspends autoplay for the grace window following a manual
// scroll. A new hold restarts the window.
func (machine *Machine) HoldManual(grace time.Duration) {
	machine.update(func(state *Snapshot) {
		if machine.manualTimer != nil {
			machine.manualTimer.Stop()
		}
		machine.manualGen++
		gen := machine.manualGen
		state.ManualPending = true
		machine.manualTimer = machine.scheduler.AfterFunc(grace, func() {
			machine.expireManual(gen)
		})
	})
}

// Close cancels both timers and closes observer channels. Later calls on the
// Machine are ignored.
func (machine *Machine) Close() {
	machine.mu.Lock()
	if machine.closed {
		machine.mu.Unlock()
		return
	}
	machine.closed = true
	if machine.blurTimer != nil {
		machine.blurTimer.Stop()
		machine.blurTimer = nil
	}
	if machine.manualTimer != nil {
		machine.manualTimer.Stop()
		machine.manualTimer = nil
	}
	events := machine.events
	machine.events = nil
	machine.onChange = nil
	machine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (machine *Machine) expireBlur(gen uint64) {
	machine.update(func(state *Snapshot) {
		if gen != machine.blurGen || !state.BlurPending {
			return
		}
		machine.blurTimer = nil
		state.BlurPending = false
		state.FocusWithin = false
		state.ActiveID = ""
	})
}

func (machine *Machine) expireManual(gen uint64) {
	machine.update(func(state *Snapshot) {
		if gen != machine.manualGen {
			return
		}
		machine.manualTimer = nil
		state.ManualPending = false
	})
}

func (machine *Machine) cancelBlurLocked(state *Snapshot) {
	if machine.blurTimer != nil {
		machine.blurTimer.Stop()
		machine.blurTimer = nil
	}
	// Invalidates a callback that already left the timer but has not run yet.
	machine.blurGen++
	state.BlurPending = false
}

// update applies mutate under the lock and notifies observers when the
// suspended flag or the active item moved.
func (machine *Machine) update(mutate func(state *Snapshot)) {
	machine.mu.Lock()
	if machine.closed {
		machine.mu.Unlock()
		return
	}
	before := machine.state
	mutate(&machine.state)
	after := machine.state
	handlers := slices.Clone(machine.onChange)

	var emitted []Event
	now := time.Now()
	if before.Suspended() != after.Suspended() {
		eventType := EventResumed
		if after.Suspended() {
			eventType = EventSuspended
		}
		emitted = append(emitted, Event{Type: eventType, Snapshot: after, At: now})
	}
	if before.ActiveID != after.ActiveID {
		emitted = append(emitted, Event{Type: EventActiveChanged, Snapshot: after, At: now})
	}
	for _, event := range emitted {
		machine.emitLocked(event)
	}
	machine.mu.Unlock()

	if before == after {
		return
	}
	for _, handler := range handlers {
		handler(after)
	}
}

func (machine *Machine) emitLocked(event Event) {
	for _, ch := range machine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
