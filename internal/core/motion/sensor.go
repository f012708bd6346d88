// Package motion tracks whether the user asked for reduced motion.
package motion

import "sync"

// Source is one origin of the reduced-motion preference.
type Source interface {
	ReducedMotion() bool
	// Watch registers fn for preference changes and returns a function that
	// detaches it.
	Watch(fn func(reduced bool)) (detach func())
}

// Sensor combines sources: motion is reduced when any source says so.
type Sensor struct {
	mu       sync.Mutex
	sources  []Source
	values   []bool
	current  bool
	detach   []func()
	handlers watcherSet
	events   []chan bool
	closed   bool
}

// New reads every source once and subscribes to their changes.
func New(sources ...Source) *Sensor {
	sensor := &Sensor{}
	for _, source := range sources {
		if source == nil {
			continue
		}
		sensor.sources = append(sensor.sources, source)
		sensor.values = append(sensor.values, source.ReducedMotion())
	}
	sensor.current = anyTrue(sensor.values)

	for index, source := range sensor.sources {
		index := index
		sensor.detach = append(sensor.detach, source.Watch(func(reduced bool) {
			sensor.set(index, reduced)
		}))
	}
	return sensor
}

// Current returns the combined preference.
func (sensor *Sensor) Current() bool {
	sensor.mu.Lock()
	defer sensor.mu.Unlock()
	return sensor.current
}

// OnChange registers fn for combined preference changes and returns a
// function that removes it.
func (sensor *Sensor) OnChange(fn func(reduced bool)) (remove func()) {
	return sensor.handlers.add(fn)
}

// Subscribe registers a new observer channel.
func (sensor *Sensor) Subscribe(buffer int) <-chan bool {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan bool, buffer)
	sensor.mu.Lock()
	defer sensor.mu.Unlock()
	if sensor.closed {
		close(ch)
		return ch
	}
	sensor.events = append(sensor.events, ch)
	return ch
}

// Close detaches from every source and closes observer channels.
func (sensor *Sensor) Close() {
	sensor.mu.Lock()
	if sensor.closed {
		sensor.mu.Unlock()
		return
	}
	sensor.closed = true
	detach := sensor.detach
	sensor.detach = nil
	events := sensor.events
	sensor.events = nil
	sensor.mu.Unlock()
	sensor.handlers.clear()

	for _, fn := range detach {
		if fn != nil {
			fn()
		}
	}
	for _, ch := range events {
		close(ch)
	}
}

func (sensor *Sensor) set(index int, reduced bool) {
	sensor.mu.Lock()
	if sensor.closed {
		sensor.mu.Unlock()
		return
	}
	sensor.values[index] = reduced
	next := anyTrue(sensor.values)
	if next == sensor.current {
		sensor.mu.Unlock()
		return
	}
	sensor.current = next
	for _, ch := range sensor.events {
		select {
		case ch <- next:
		default:
		}
	}
	sensor.mu.Unlock()

	sensor.handlers.notify(next)
}

func anyTrue(values []bool) bool {
	for _, value := range values {
		if value {
			return true
		}
	}
	return false
}
