package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	onCancel     func()
	speed        *widget.Entry
	blurDebounce *widget.Entry
	manualGrace  *widget.Entry
	eagerCount   *widget.Entry
	fraction     *widget.Slider
	reduceMotion *widget.Check
	catalogPath  *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Brand Carousel Settings")

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		speed:        widget.NewEntry(),
		blurDebounce: widget.NewEntry(),
		manualGrace:  widget.NewEntry(),
		eagerCount:   widget.NewEntry(),
		fraction:     widget.NewSlider(0.2, 1),
		reduceMotion: widget.NewCheck("Reduce motion (stop autoplay)", nil),
		catalogPath:  widget.NewEntry(),
	}
	prefs.fraction.Step = 0.05
	prefs.catalogPath.SetPlaceHolder("Default catalog")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Motion", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Autoplay speed"), prefs.speed, widget.NewLabel(fmt.Sprintf("px/sec (max %d)", int(MaxVelocity*1000)))),
		prefs.reduceMotion,
		widget.NewLabel("Manual scroll distance (share of the view)"),
		prefs.fraction,
		widget.NewLabelWithStyle("Timing", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Resume after focus leaves"), prefs.blurDebounce, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Resume after manual scroll"), prefs.manualGrace, widget.NewLabel("ms")),
		widget.NewLabelWithStyle("Catalog", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Logos loaded up front"), prefs.eagerCount),
		prefs.catalogPath,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(440, 460))

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// SetOnCancel sets the handler called when editing is abandoned.
func (prefs *Window) SetOnCancel(handler func()) {
	prefs.onCancel = handler
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.speed.SetText(strconv.Itoa(int(settings.Velocity*1000 + 0.5)))
	prefs.blurDebounce.SetText(strconv.FormatInt(settings.BlurDebounce.Milliseconds(), 10))
	prefs.manualGrace.SetText(strconv.FormatInt(settings.ManualGrace.Milliseconds(), 10))
	prefs.eagerCount.SetText(strconv.Itoa(settings.EagerCount))
	prefs.fraction.SetValue(settings.ScrollFraction)
	prefs.reduceMotion.SetChecked(settings.ReduceMotion)
	prefs.catalogPath.SetText(settings.CatalogPath)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if perSecond, ok := parsePositiveInt(prefs.speed.Text); ok && ValidVelocity(float64(perSecond)/1000) {
		settings.Velocity = float64(perSecond) / 1000
	}
	if millis, ok := parsePositiveInt(prefs.blurDebounce.Text); ok {
		settings.BlurDebounce = time.Duration(millis) * time.Millisecond
	}
	if millis, ok := parsePositiveInt(prefs.manualGrace.Text); ok {
		settings.ManualGrace = time.Duration(millis) * time.Millisecond
	}
	if count, err := strconv.Atoi(strings.TrimSpace(prefs.eagerCount.Text)); err == nil && count >= 0 {
		settings.EagerCount = count
	}

	settings.ScrollFraction = prefs.fraction.Value
	settings.ReduceMotion = prefs.reduceMotion.Checked
	settings.CatalogPath = strings.TrimSpace(prefs.catalogPath.Text)

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
