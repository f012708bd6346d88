package motion

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"brandcarousel/internal/platform"
)

// Poller is a Source that periodically asks the operating system for its
// reduced-motion preference.
type Poller struct {
	mu       sync.Mutex
	provider platform.MotionProvider
	interval time.Duration
	logger   *slog.Logger
	value    bool
	watchers watcherSet
	stopCh   chan struct{}
	running  bool
}

// NewPoller queries provider once and returns a Poller. Call Start to begin
// polling.
func NewPoller(provider platform.MotionProvider, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	poller := &Poller{
		provider: provider,
		interval: interval,
		logger:   logger,
	}
	poller.Poll()
	return poller
}

// Start launches the polling loop. A provider that reports
// platform.ErrMotionUnsupported is never polled.
func (poller *Poller) Start() {
	poller.mu.Lock()
	if poller.running || poller.provider == nil {
		poller.mu.Unlock()
		return
	}
	poller.running = true
	poller.stopCh = make(chan struct{})
	stopCh := poller.stopCh
	poller.mu.Unlock()

	go poller.run(stopCh)
}

// Stop terminates the polling loop.
func (poller *Poller) Stop() {
	poller.mu.Lock()
	defer poller.mu.Unlock()
	if !poller.running {
		return
	}
	close(poller.stopCh)
	poller.running = false
}

// ReducedMotion returns the last polled value.
func (poller *Poller) ReducedMotion() bool {
	poller.mu.Lock()
	defer poller.mu.Unlock()
	return poller.value
}

// Watch registers fn for value changes.
func (poller *Poller) Watch(fn func(bool)) func() {
	return poller.watchers.add(fn)
}

// Poll queries the provider once. It reports false once the provider turned
// out to be unsupported.
func (poller *Poller) Poll() bool {
	poller.mu.Lock()
	provider := poller.provider
	poller.mu.Unlock()
	if provider == nil {
		return false
	}

	reduced, err := provider.ReducedMotion()
	if err != nil {
		if errors.Is(err, platform.ErrMotionUnsupported) {
			poller.logger.Info("motion: reduced-motion preference unavailable", "error", err)
			poller.mu.Lock()
			poller.provider = nil
			poller.mu.Unlock()
			poller.update(false)
			return false
		}
		poller.logger.Warn("motion: query failed, keeping last value", "error", err)
		return true
	}
	poller.update(reduced)
	return true
}

func (poller *Poller) run(stopCh chan struct{}) {
	ticker := time.NewTicker(poller.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !poller.Poll() {
				poller.Stop()
				return
			}
		}
	}
}

func (poller *Poller) update(value bool) {
	poller.mu.Lock()
	if poller.value == value {
		poller.mu.Unlock()
		return
	}
	poller.value = value
	poller.mu.Unlock()

	poller.watchers.notify(value)
}
