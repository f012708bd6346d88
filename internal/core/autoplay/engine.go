package autoplay

import (
	"log/slog"
	"math"
	"sync"
	"time"
)

// State is the lifecycle state of the engine.
type State string

const (
	StateStopped   State = "stopped"
	StateRunning   State = "running"
	StateSuspended State = "suspended"
)

// FrameSource delivers display refresh callbacks until stopped.
type FrameSource interface {
	Start(step func(now time.Time))
	Stop()
}

// Surface is the scrollable area the engine moves.
type Surface interface {
	// LoopWidth is the width of one un-duplicated pass. A value of zero or
	// less means the surface is not attached yet.
	LoopWidth() float32
	SetOffset(offset float32)
}

// Config contains engine motion values.
type Config struct {
	// Velocity is expressed in scroll units per millisecond.
	Velocity      float64
	MaxFrameDelta time.Duration
}

// Engine advances the scroll offset of a Surface at a fixed velocity,
// wrapping it into [0, loopWidth).
type Engine struct {
	mu        sync.Mutex
	config    Config
	frames    FrameSource
	surface   Surface
	logger    *slog.Logger
	offset    float64
	running   bool
	suspended bool
	last      time.Time
	gen       uint64
}

// New creates a stopped engine.
func New(config Config, frames FrameSource, surface Surface, logger *slog.Logger) *Engine {
	if config.Velocity <= 0 {
		config.Velocity = 0.12
	}
	if config.MaxFrameDelta <= 0 {
		config.MaxFrameDelta = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		config:  config,
		frames:  frames,
		surface: surface,
		logger:  logger,
	}
}

// Sync starts or stops the engine for the current item count and motion
// preference. It reports whether the engine is running afterwards. A surface
// that is not attached yet leaves the engine stopped; calling Sync again once
// it is attached starts it.
func (engine *Engine) Sync(itemCount int, reducedMotion bool) bool {
	if itemCount <= 0 || reducedMotion {
		engine.Stop()
		return false
	}
	if engine.surface.LoopWidth() <= 0 {
		engine.logger.Debug("autoplay: surface not attached, deferring start")
		return false
	}

	engine.mu.Lock()
	if engine.running {
		engine.mu.Unlock()
		return true
	}
	engine.running = true
	engine.last = time.Time{}
	engine.gen++
	gen := engine.gen
	engine.mu.Unlock()

	engine.logger.Debug("autoplay: started", "items", itemCount)
	engine.frames.Start(func(now time.Time) {
		engine.step(gen, now)
	})
	return true
}

// Stop cancels the frame callback. Frames that arrive afterwards are ignored.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	engine.running = false
	engine.gen++
	engine.mu.Unlock()

	engine.frames.Stop()
	engine.logger.Debug("autoplay: stopped")
}

// SetSuspended holds or releases autoplay. Frames keep arriving while
// suspended so resuming is immediate.
func (engine *Engine) SetSuspended(suspended bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.suspended == suspended {
		return
	}
	engine.suspended = suspended
	if !suspended {
		// The next frame only records a fresh baseline.
		engine.last = time.Time{}
	}
}

// ScrollBy moves the offset by delta in either direction, wrapped into the loop.
func (engine *Engine) ScrollBy(delta float32) {
	width := float64(engine.surface.LoopWidth())
	if width <= 0 {
		return
	}
	engine.mu.Lock()
	engine.offset = wrap(engine.offset+float64(delta), width)
	offset := engine.offset
	engine.mu.Unlock()

	engine.surface.SetOffset(float32(offset))
}

// Offset returns the current scroll offset.
func (engine *Engine) Offset() float64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.offset
}

// State returns the lifecycle state.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	switch {
	case !engine.running:
		return StateStopped
	case engine.suspended:
		return StateSuspended
	default:
		return StateRunning
	}
}

func (engine *Engine) step(gen uint64, now time.Time) {
	width := float64(engine.surface.LoopWidth())

	engine.mu.Lock()
	if !engine.running || gen != engine.gen {
		engine.mu.Unlock()
		return
	}
	if width <= 0 {
		engine.mu.Unlock()
		return
	}
	if engine.last.IsZero() {
		engine.last = now
		engine.mu.Unlock()
		return
	}

	delta := now.Sub(engine.last)
	engine.last = now
	if engine.suspended || delta <= 0 {
		engine.mu.Unlock()
		return
	}
	if delta > engine.config.MaxFrameDelta {
		delta = engine.config.MaxFrameDelta
	}

	millis := float64(delta) / float64(time.Millisecond)
	engine.offset = wrap(engine.offset+millis*engine.config.Velocity, width)
	offset := engine.offset
	engine.mu.Unlock()

	engine.surface.SetOffset(float32(offset))
}

func wrap(offset, width float64) float64 {
	offset = math.Mod(offset, width)
	if offset < 0 {
		offset += width
	}
	if offset >= width {
		offset = 0
	}
	return offset
}
