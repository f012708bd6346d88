// Package keynav maps directional keys to focus movement across the
// interactive carousel items.
package keynav

import "fyne.io/fyne/v2"

// Wrap maps any index, including negative ones, into [0, count).
func Wrap(index, count int) int {
	if count <= 0 {
		return 0
	}
	return ((index % count) + count) % count
}

// Target returns the item index the key moves focus to. The second result is
// false for keys the carousel does not handle and when there are no items.
func Target(key fyne.KeyName, index, count int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	switch key {
	case fyne.KeyRight:
		return Wrap(index+1, count), true
	case fyne.KeyLeft:
		return Wrap(index-1, count), true
	case fyne.KeyHome:
		return 0, true
	case fyne.KeyEnd:
		return count - 1, true
	default:
		return 0, false
	}
}

// Controller moves focus between items in response to keys.
type Controller struct {
	Count func() int
	Focus func(index int)
}

// HandleKey moves focus for a key received by the item at index. It reports
// whether the key was consumed.
func (controller Controller) HandleKey(index int, key fyne.KeyName) bool {
	count := 0
	if controller.Count != nil {
		count = controller.Count()
	}
	target, ok := Target(key, index, count)
	if !ok {
		return false
	}
	if controller.Focus != nil {
		controller.Focus(target)
	}
	return true
}
