package preferences

import (
	"time"

	"brandcarousel/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Velocity       float64
	BlurDebounce   time.Duration
	ManualGrace    time.Duration
	ScrollFraction float64
	EagerCount     int

	ReduceMotion bool
	CatalogPath  string
}

// MaxVelocity is the fastest autoplay speed accepted, in px per ms.
const MaxVelocity = 2.0

// ValidVelocity reports whether velocity can be used and stored.
func ValidVelocity(velocity float64) bool {
	return velocity > 0 && velocity <= MaxVelocity
}

// DefaultSettings returns default settings for the carousel.
func DefaultSettings() Settings {
	config := model.DefaultCarouselConfig()
	return Settings{
		Velocity:       config.Velocity,
		BlurDebounce:   config.BlurDebounce,
		ManualGrace:    config.ManualGrace,
		ScrollFraction: config.ScrollFraction,
		EagerCount:     config.EagerCount,
		ReduceMotion:   false,
	}
}

// CarouselConfig converts settings to a carousel configuration.
func (settings Settings) CarouselConfig() model.CarouselConfig {
	config := model.DefaultCarouselConfig()
	config.Velocity = settings.Velocity
	config.BlurDebounce = settings.BlurDebounce
	config.ManualGrace = settings.ManualGrace
	config.ScrollFraction = settings.ScrollFraction
	config.EagerCount = settings.EagerCount
	return config.Normalized()
}
