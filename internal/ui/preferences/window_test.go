package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowShowsCurrentSettings(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, DefaultSettings(), nil)

	assert.Equal(t, "120", prefs.speed.Text)
	assert.Equal(t, "120", prefs.blurDebounce.Text)
	assert.Equal(t, "900", prefs.manualGrace.Text)
	assert.Equal(t, "4", prefs.eagerCount.Text)
	assert.InDelta(t, 0.6, prefs.fraction.Value, 1e-9)
	assert.False(t, prefs.reduceMotion.Checked)
}

func TestSaveParsesEditedValues(t *testing.T) {
	app := test.NewTempApp(t)
	var saved *Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) { saved = &settings })

	prefs.speed.SetText("60")
	prefs.blurDebounce.SetText("200")
	prefs.manualGrace.SetText("abc")
	prefs.eagerCount.SetText("0")
	prefs.reduceMotion.SetChecked(true)
	prefs.catalogPath.SetText("  /tmp/brands.yaml ")
	prefs.handleSave()

	require.NotNil(t, saved)
	assert.InDelta(t, 0.06, saved.Velocity, 1e-9)
	assert.Equal(t, 200*time.Millisecond, saved.BlurDebounce)
	assert.Equal(t, 900*time.Millisecond, saved.ManualGrace, "invalid input keeps the old value")
	assert.Zero(t, saved.EagerCount)
	assert.True(t, saved.ReduceMotion)
	assert.Equal(t, "/tmp/brands.yaml", saved.CatalogPath)
}

func TestSaveKeepsSpeedTheLoaderWouldReject(t *testing.T) {
	app := test.NewTempApp(t)
	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) { saved = settings })

	prefs.speed.SetText("5000")
	prefs.handleSave()
	assert.InDelta(t, 0.12, saved.Velocity, 1e-9)
	assert.True(t, ValidVelocity(saved.Velocity))

	prefs.speed.SetText("2000")
	prefs.handleSave()
	assert.InDelta(t, MaxVelocity, saved.Velocity, 1e-9)
}

func TestValidVelocity(t *testing.T) {
	assert.True(t, ValidVelocity(0.12))
	assert.True(t, ValidVelocity(MaxVelocity))
	assert.False(t, ValidVelocity(MaxVelocity+0.001))
	assert.False(t, ValidVelocity(0))
	assert.False(t, ValidVelocity(-1))
}

func TestCarouselConfigNormalizesSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.Velocity = -1
	settings.ScrollFraction = 3

	config := settings.CarouselConfig()
	assert.InDelta(t, 0.12, config.Velocity, 1e-9)
	assert.InDelta(t, 0.6, config.ScrollFraction, 1e-9)
	assert.Equal(t, time.Second, config.MaxFrameDelta)
}
