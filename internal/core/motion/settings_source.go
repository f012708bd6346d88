package motion

import (
	"sync"

	"fyne.io/fyne/v2"
)

// SettingsSource reports reduced motion when the fyne settings disable
// animations (for example through FYNE_DISABLE_ANIMATIONS).
type SettingsSource struct {
	mu         sync.Mutex
	settings   fyne.Settings
	value      bool
	watchers   watcherSet
	subscribed bool
}

// NewSettingsSource reads the current animation setting of app.
func NewSettingsSource(app fyne.App) *SettingsSource {
	settings := app.Settings()
	return &SettingsSource{
		settings: settings,
		value:    !settings.ShowAnimations(),
	}
}

// ReducedMotion reports whether animations are disabled.
func (source *SettingsSource) ReducedMotion() bool {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.value
}

// Watch registers fn for changes of the animation setting. fyne offers no way
// to remove a settings listener, so detaching only drops fn.
func (source *SettingsSource) Watch(fn func(bool)) func() {
	source.mu.Lock()
	if !source.subscribed {
		source.subscribed = true
		source.settings.AddListener(source.changed)
	}
	source.mu.Unlock()
	return source.watchers.add(fn)
}

func (source *SettingsSource) changed(settings fyne.Settings) {
	reduced := !settings.ShowAnimations()

	source.mu.Lock()
	if reduced == source.value {
		source.mu.Unlock()
		return
	}
	source.value = reduced
	source.mu.Unlock()

	source.watchers.notify(reduced)
}
