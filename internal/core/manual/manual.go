// Package manual handles explicit forward and backward scroll requests.
package manual

import "time"

// Direction of a manual scroll.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Viewport reports the visible width of the carousel.
type Viewport interface {
	ViewportWidth() float32
}

// Scroller moves the carousel by a distance.
type Scroller interface {
	ScrollBy(delta float32)
}

// Holder pauses autoplay for a grace window.
type Holder interface {
	HoldManual(grace time.Duration)
}

// Config contains manual scroll values.
type Config struct {
	Fraction float64
	Grace    time.Duration
}

// Controller pauses autoplay and scrolls by a share of the viewport.
type Controller struct {
	config   Config
	viewport Viewport
	scroller Scroller
	holder   Holder
}

// New creates a manual scroll controller.
func New(config Config, viewport Viewport, scroller Scroller, holder Holder) *Controller {
	if config.Fraction <= 0 {
		config.Fraction = 0.6
	}
	if config.Grace <= 0 {
		config.Grace = 900 * time.Millisecond
	}
	return &Controller{config: config, viewport: viewport, scroller: scroller, holder: holder}
}

// Scroll suspends autoplay for the grace window and scrolls in direction.
// Smooth scrolling has no completion signal, so the grace window is a fixed
// upper bound on its duration.
func (controller *Controller) Scroll(direction Direction) {
	width := controller.viewport.ViewportWidth()
	if width <= 0 {
		return
	}
	controller.holder.HoldManual(controller.config.Grace)
	controller.scroller.ScrollBy(float32(float64(width) * controller.config.Fraction * float64(direction)))
}
