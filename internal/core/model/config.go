package model

import "time"

// CarouselConfig contains the tunable timing and motion values of a carousel.
type CarouselConfig struct {
	// Velocity is the autoplay speed in scroll units per millisecond.
	Velocity float64
	// MaxFrameDelta caps the elapsed time applied by a single frame.
	MaxFrameDelta time.Duration

	BlurDebounce time.Duration
	ManualGrace  time.Duration

	// ScrollFraction is the share of the viewport width moved by one manual scroll.
	ScrollFraction float64
	EagerCount     int
}

// DefaultCarouselConfig returns the stock carousel behaviour.
func DefaultCarouselConfig() CarouselConfig {
	return CarouselConfig{
		Velocity:       0.12,
		MaxFrameDelta:  time.Second,
		BlurDebounce:   120 * time.Millisecond,
		ManualGrace:    900 * time.Millisecond,
		ScrollFraction: 0.6,
		EagerCount:     DefaultEagerCount,
	}
}

// Normalized returns the config with zero or invalid values replaced by defaults.
func (config CarouselConfig) Normalized() CarouselConfig {
	defaults := DefaultCarouselConfig()
	if config.Velocity <= 0 {
		config.Velocity = defaults.Velocity
	}
	if config.MaxFrameDelta <= 0 {
		config.MaxFrameDelta = defaults.MaxFrameDelta
	}
	if config.BlurDebounce <= 0 {
		config.BlurDebounce = defaults.BlurDebounce
	}
	if config.ManualGrace <= 0 {
		config.ManualGrace = defaults.ManualGrace
	}
	if config.ScrollFraction <= 0 || config.ScrollFraction > 1 {
		config.ScrollFraction = defaults.ScrollFraction
	}
	if config.EagerCount < 0 {
		config.EagerCount = defaults.EagerCount
	}
	return config
}
