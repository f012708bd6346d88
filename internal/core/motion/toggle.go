package motion

import "sync"

// Toggle is a Source whose value is set in-process, for example from a tray
// menu or a settings file override.
type Toggle struct {
	mu       sync.Mutex
	value    bool
	watchers watcherSet
}

// NewToggle returns a Toggle holding value.
func NewToggle(value bool) *Toggle {
	return &Toggle{value: value}
}

// ReducedMotion returns the toggle value.
func (toggle *Toggle) ReducedMotion() bool {
	toggle.mu.Lock()
	defer toggle.mu.Unlock()
	return toggle.value
}

// Set changes the value and notifies watchers when it moved.
func (toggle *Toggle) Set(value bool) {
	toggle.mu.Lock()
	if toggle.value == value {
		toggle.mu.Unlock()
		return
	}
	toggle.value = value
	toggle.mu.Unlock()

	toggle.watchers.notify(value)
}

// Watch registers fn for value changes.
func (toggle *Toggle) Watch(fn func(bool)) func() {
	return toggle.watchers.add(fn)
}
