package keynav

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, 4, Wrap(-1, 5))
	assert.Equal(t, 0, Wrap(5, 5))
	assert.Equal(t, 3, Wrap(-7, 5))
	assert.Equal(t, 0, Wrap(3, 0))
}

func TestTarget(t *testing.T) {
	cases := []struct {
		name    string
		key     fyne.KeyName
		index   int
		want    int
		handled bool
	}{
		{"right steps forward", fyne.KeyRight, 2, 3, true},
		{"right wraps to first", fyne.KeyRight, 7, 0, true},
		{"left steps back", fyne.KeyLeft, 3, 2, true},
		{"left wraps to last", fyne.KeyLeft, 0, 7, true},
		{"home", fyne.KeyHome, 5, 0, true},
		{"end", fyne.KeyEnd, 1, 7, true},
		{"unrelated key", fyne.KeyUp, 4, 0, false},
		{"letter", fyne.KeyA, 4, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, handled := Target(tc.key, tc.index, 8)
			assert.Equal(t, tc.handled, handled)
			if tc.handled {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestTargetWithoutItems(t *testing.T) {
	_, handled := Target(fyne.KeyRight, 0, 0)
	assert.False(t, handled)
}

func TestControllerFocusesTarget(t *testing.T) {
	focused := -1
	controller := Controller{
		Count: func() int { return 3 },
		Focus: func(index int) { focused = index },
	}

	assert.True(t, controller.HandleKey(2, fyne.KeyRight))
	assert.Equal(t, 0, focused)

	focused = -1
	assert.False(t, controller.HandleKey(1, fyne.KeyEscape))
	assert.Equal(t, -1, focused, "unhandled keys leave focus alone")
}
