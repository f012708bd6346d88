package showcase

import (
	"testing"
	"time"

	"brandcarousel/internal/core/autoplay"
	"brandcarousel/internal/core/model"
	"brandcarousel/internal/core/sched"
	"brandcarousel/internal/ui/carousel"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleFrames struct{}

func (idleFrames) Start(func(time.Time)) {}
func (idleFrames) Stop()                 {}

func newShowcase(t *testing.T) (*Window, *carousel.Carousel, *sched.Manual) {
	t.Helper()
	app := test.NewTempApp(t)
	scheduler := sched.NewManual()
	brands := carousel.New([]model.Item{
		{ID: "acme", Name: "Acme"},
		{ID: "globex", Name: "Globex"},
	}, carousel.Options{
		Scheduler:     scheduler,
		Frames:        idleFrames{},
		Do:            func(fn func()) { fn() },
		InstantScroll: true,
	})
	return New(app, Config{}, brands), brands, scheduler
}

func TestButtonsScrollTheCarousel(t *testing.T) {
	showcase, brands, scheduler := newShowcase(t)
	showcase.Window().Resize(fyne.NewSize(600, 300))

	assert.Equal(t, ForwardLabel, showcase.forward.Text)
	assert.Equal(t, BackwardLabel, showcase.backward.Text)

	test.Tap(showcase.forward)
	assert.True(t, brands.Snapshot().ManualPending)
	forwardOffset := brands.Offset()
	assert.Greater(t, forwardOffset, 0.0)

	scheduler.Advance(900 * time.Millisecond)
	assert.False(t, brands.Snapshot().ManualPending)

	test.Tap(showcase.backward)
	assert.InDelta(t, 0, brands.Offset(), 1e-3)
}

func TestCloseDestroysCarousel(t *testing.T) {
	showcase, brands, scheduler := newShowcase(t)
	showcase.Window().Resize(fyne.NewSize(600, 300))
	closed := false
	showcase.SetOnClosed(func() { closed = true })

	test.Tap(showcase.forward)
	require.Equal(t, 1, scheduler.Pending())

	showcase.close()
	assert.True(t, closed)
	assert.Zero(t, scheduler.Pending())
	assert.Equal(t, autoplay.StateStopped, brands.State())
}

func TestHideOnCloseKeepsCarouselAlive(t *testing.T) {
	showcase, brands, scheduler := newShowcase(t)
	showcase.UpdateConfig(Config{HideOnClose: true})
	showcase.Window().Resize(fyne.NewSize(600, 300))

	test.Tap(showcase.forward)
	showcase.close()
	assert.Equal(t, 1, scheduler.Pending())
	assert.True(t, brands.Snapshot().ManualPending)
}

func TestSetCarouselRewiresButtons(t *testing.T) {
	showcase, previous, scheduler := newShowcase(t)
	replacement := carousel.New([]model.Item{{ID: "umbrella", Name: "Umbrella"}}, carousel.Options{
		Scheduler:     scheduler,
		Frames:        idleFrames{},
		Do:            func(fn func()) { fn() },
		InstantScroll: true,
	})

	test.Tap(showcase.forward)
	require.Equal(t, 1, scheduler.Pending())
	previousOffset := previous.Offset()

	showcase.SetCarousel(replacement)
	assert.Zero(t, scheduler.Pending(), "previous carousel is destroyed")
	assert.Same(t, replacement, showcase.Carousel())

	showcase.Window().Resize(fyne.NewSize(600, 300))
	test.Tap(showcase.forward)
	assert.True(t, replacement.Snapshot().ManualPending)
	assert.Equal(t, previousOffset, previous.Offset())
}

func TestHeaderLayoutKeepsButtonsRightAligned(t *testing.T) {
	showcase, _, _ := newShowcase(t)
	layout := &headerLayout{}
	size := fyne.NewSize(800, 60)
	layout.Layout([]fyne.CanvasObject{showcase.title, showcase.backward, showcase.forward}, size)

	assert.LessOrEqual(t, showcase.forward.Position().X+showcase.forward.Size().Width, size.Width)
	assert.Less(t, showcase.backward.Position().X, showcase.forward.Position().X)
	assert.Less(t, showcase.title.Position().X, showcase.backward.Position().X)
}
