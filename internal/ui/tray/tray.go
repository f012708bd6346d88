package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Brand Carousel"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow         func()
	OnPreferences  func()
	OnReduceMotion func(enabled bool)
	OnQuit         func()
}

// Manager handles system tray state.
type Manager struct {
	app          desktop.App
	statusItem   *fyne.MenuItem
	showItem     *fyne.MenuItem
	prefsItem    *fyne.MenuItem
	motionItem   *fyne.MenuItem
	quitItem     *fyne.MenuItem
	callbacks    Callbacks
	reduceMotion bool
	brands       int
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks, reduceMotion bool) *Manager {
	manager := &Manager{
		app:          app,
		callbacks:    callbacks,
		reduceMotion: reduceMotion,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show brands", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	manager.prefsItem = fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	manager.motionItem = fyne.NewMenuItem("Reduce motion", func() {
		manager.SetReduceMotion(!manager.reduceMotion)
		if manager.callbacks.OnReduceMotion != nil {
			manager.callbacks.OnReduceMotion(manager.reduceMotion)
		}
	})
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshStatus()
	return manager
}

// SetReduceMotion updates the reduce-motion check mark.
func (manager *Manager) SetReduceMotion(enabled bool) {
	manager.reduceMotion = enabled
	manager.refreshStatus()
}

// SetBrandCount updates the number of brands shown in the status line.
func (manager *Manager) SetBrandCount(count int) {
	manager.brands = count
	manager.refreshStatus()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		manager.showItem,
		manager.prefsItem,
		manager.motionItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	)
}

func (manager *Manager) refreshStatus() {
	status := fmt.Sprintf("%d brands", manager.brands)
	if manager.reduceMotion {
		status = fmt.Sprintf("%s (motion reduced)", status)
	}
	manager.statusItem.Label = status
	manager.motionItem.Checked = manager.reduceMotion
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}
