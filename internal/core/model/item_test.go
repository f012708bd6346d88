package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems(ids ...string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Name: "Brand " + id, Logo: id + ".png", Description: "About " + id})
	}
	return items
}

func TestBuildLoopEmpty(t *testing.T) {
	assert.Empty(t, BuildLoop(nil))
	assert.Empty(t, BuildLoop([]Item{}))
}

func TestBuildLoopDuplicatesFollowOriginals(t *testing.T) {
	items := sampleItems("a", "b", "c")
	entries := BuildLoop(items)
	require.Len(t, entries, 6)

	for index, entry := range entries {
		assert.Equal(t, index, entry.Index)
		assert.Equal(t, items[index%3], entry.Item)
		assert.Equal(t, index >= 3, entry.Duplicate, "entry %d", index)
	}
}

func TestBuildLoopCopiesRepeatsDuplicateRuns(t *testing.T) {
	items := sampleItems("a", "b")
	entries := BuildLoopCopies(items, 3)
	require.Len(t, entries, 8)

	for index, entry := range entries {
		assert.Equal(t, index, entry.Index)
		assert.Equal(t, items[index%2], entry.Item)
		assert.Equal(t, index >= 2, entry.Duplicate, "entry %d", index)
	}
	assert.Equal(t, BuildLoop(items), BuildLoopCopies(items, 0))
}

func TestCopiesToFill(t *testing.T) {
	// Three 180 wide tiles with a 4 gap: one run is 552.
	assert.Equal(t, 1, CopiesToFill(392, 552, 4))
	assert.Equal(t, 2, CopiesToFill(960, 552, 4))
	assert.Equal(t, 2, CopiesToFill(1100, 552, 4))
	assert.Equal(t, 3, CopiesToFill(1101, 552, 4))
	assert.Equal(t, 1, CopiesToFill(0, 552, 4))
	assert.Equal(t, 1, CopiesToFill(960, 0, 4))

	for _, viewport := range []float32{100, 551, 960, 1500, 4000} {
		copies := CopiesToFill(viewport, 552, 4)
		track := float32(copies+1)*552 - 4
		assert.GreaterOrEqual(t, track-viewport, float32(552), "viewport %v", viewport)
	}
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, IDs(sampleItems("a", "b")))
}

func TestPresentActiveAndDuplicates(t *testing.T) {
	entries := BuildLoop(sampleItems("a", "b", "c"))
	views := Present(entries, "b", 4)
	require.Len(t, views, 6)

	active := views[1]
	assert.Equal(t, "Brand b logo", active.Label)
	assert.True(t, active.Interactive)
	assert.True(t, active.Expanded)
	assert.Equal(t, LivePolite, active.Live)
	assert.Equal(t, "b-description", active.ControlsID)

	idle := views[0]
	assert.False(t, idle.Expanded)
	assert.Equal(t, LiveOff, idle.Live)

	mirror := views[4]
	assert.Equal(t, "b", mirror.Entry.Item.ID)
	assert.False(t, mirror.Interactive)
	assert.True(t, mirror.Hidden)
	assert.False(t, mirror.Expanded, "duplicates never expand")
	assert.Empty(t, mirror.ControlsID)
}

func TestPresentLoadingHint(t *testing.T) {
	views := Present(BuildLoop(sampleItems("a", "b", "c")), "", DefaultEagerCount)
	for index, view := range views {
		if index < DefaultEagerCount {
			assert.Equal(t, LoadEager, view.Loading, "entry %d", index)
		} else {
			assert.Equal(t, LoadLazy, view.Loading, "entry %d", index)
		}
	}
}

func TestNormalizedFillsDefaults(t *testing.T) {
	config := CarouselConfig{Velocity: 0.3, ScrollFraction: 4}.Normalized()
	defaults := DefaultCarouselConfig()

	assert.Equal(t, 0.3, config.Velocity)
	assert.Equal(t, defaults.ScrollFraction, config.ScrollFraction)
	assert.Equal(t, defaults.BlurDebounce, config.BlurDebounce)
	assert.Equal(t, defaults.ManualGrace, config.ManualGrace)
	assert.Equal(t, defaults.MaxFrameDelta, config.MaxFrameDelta)
}
