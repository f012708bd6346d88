package model

import "math"

// Item is a single brand shown by the carousel.
type Item struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Logo        string `yaml:"logo"`
	Description string `yaml:"description"`
}

// LoopEntry is one slot of the rendered loop buffer.
type LoopEntry struct {
	Item      Item
	Index     int
	Duplicate bool
}

// BuildLoop returns the items followed by a copy of the items, so the scroll
// position can wrap from the end of the first run back to its start without a
// visible jump. Copies are flagged as duplicates.
func BuildLoop(items []Item) []LoopEntry {
	return BuildLoopCopies(items, 1)
}

// BuildLoopCopies is BuildLoop with copies runs of duplicates after the
// originals. A view wider than one run needs more than one copy to stay
// filled until the offset wraps. Fewer than one copy counts as one.
func BuildLoopCopies(items []Item, copies int) []LoopEntry {
	if len(items) == 0 {
		return nil
	}
	if copies < 1 {
		copies = 1
	}

	entries := make([]LoopEntry, 0, len(items)*(copies+1))
	for index, item := range items {
		entries = append(entries, LoopEntry{Item: item, Index: index})
	}
	for run := 1; run <= copies; run++ {
		for index, item := range items {
			entries = append(entries, LoopEntry{Item: item, Index: run*len(items) + index, Duplicate: true})
		}
	}
	return entries
}

// CopiesToFill returns how many duplicate runs a track needs so that one run
// plus a viewport of the given width always fits. runWidth is the width of a
// single run including its trailing gap.
func CopiesToFill(viewportWidth, runWidth, gap float32) int {
	if runWidth <= 0 || viewportWidth <= 0 {
		return 1
	}
	copies := int(math.Ceil(float64((viewportWidth + gap) / runWidth)))
	if copies < 1 {
		return 1
	}
	return copies
}

// IDs returns the item identifiers in order.
func IDs(items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
