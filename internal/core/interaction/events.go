package interaction

import "time"

// EventType defines the type of interaction event.
type EventType string

const (
	EventSuspended     EventType = "suspended"
	EventResumed       EventType = "resumed"
	EventActiveChanged EventType = "active_changed"
)

// Snapshot is a consistent view of the interaction state.
type Snapshot struct {
	ActiveID      string
	PointerOver   bool
	FocusWithin   bool
	BlurPending   bool
	ManualPending bool
}

// Suspended reports whether autoplay must hold still. Any single condition
// keeps the carousel paused.
func (snapshot Snapshot) Suspended() bool {
	return snapshot.PointerOver ||
		snapshot.FocusWithin ||
		snapshot.ActiveID != "" ||
		snapshot.BlurPending ||
		snapshot.ManualPending
}

// Event represents a Machine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
