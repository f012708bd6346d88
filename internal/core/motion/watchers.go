package motion

import "sync"

// watcherSet holds change callbacks. The zero value is ready to use.
type watcherSet struct {
	mu     sync.Mutex
	fns    map[int]func(bool)
	nextID int
}

// add registers fn and returns a function that removes it.
func (set *watcherSet) add(fn func(bool)) (remove func()) {
	set.mu.Lock()
	defer set.mu.Unlock()
	if set.fns == nil {
		set.fns = map[int]func(bool){}
	}
	id := set.nextID
	set.nextID++
	set.fns[id] = fn
	return func() {
		set.mu.Lock()
		defer set.mu.Unlock()
		delete(set.fns, id)
	}
}

// notify calls every registered fn with value outside the lock, so a
// callback may add or remove watchers.
func (set *watcherSet) notify(value bool) {
	set.mu.Lock()
	fns := make([]func(bool), 0, len(set.fns))
	for _, fn := range set.fns {
		fns = append(fns, fn)
	}
	set.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

func (set *watcherSet) clear() {
	set.mu.Lock()
	defer set.mu.Unlock()
	set.fns = nil
}

func (set *watcherSet) len() int {
	set.mu.Lock()
	defer set.mu.Unlock()
	return len(set.fns)
}
