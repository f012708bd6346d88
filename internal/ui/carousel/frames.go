package carousel

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// animationFrames drives the autoplay engine from fyne's animation clock,
// which ticks once per display refresh.
type animationFrames struct {
	mu        sync.Mutex
	animation *fyne.Animation
}

func (frames *animationFrames) Start(step func(now time.Time)) {
	frames.Stop()

	animation := &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Curve:       fyne.AnimationLinear,
		Tick: func(float32) {
			step(time.Now())
		},
	}
	frames.mu.Lock()
	frames.animation = animation
	frames.mu.Unlock()
	animation.Start()
}

func (frames *animationFrames) Stop() {
	frames.mu.Lock()
	animation := frames.animation
	frames.animation = nil
	frames.mu.Unlock()

	if animation != nil {
		animation.Stop()
	}
}
