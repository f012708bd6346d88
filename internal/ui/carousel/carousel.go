package carousel

import (
	"context"
	"log/slog"
	"time"

	"brandcarousel/internal/core/autoplay"
	"brandcarousel/internal/core/interaction"
	"brandcarousel/internal/core/keynav"
	"brandcarousel/internal/core/manual"
	"brandcarousel/internal/core/model"
	"brandcarousel/internal/core/motion"
	"brandcarousel/internal/core/sched"
	"brandcarousel/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const glideDuration = 350 * time.Millisecond

// Options configures a Carousel. Zero values select the production defaults.
type Options struct {
	Config    model.CarouselConfig
	Sensor    *motion.Sensor
	Scheduler sched.Scheduler
	Frames    autoplay.FrameSource
	Resolver  *resources.Resolver
	Logger    *slog.Logger
	// Do runs a function on the UI goroutine. Defaults to fyne.Do.
	Do func(func())
	// InstantScroll applies manual scrolls in one step instead of gliding.
	InstantScroll bool
}

// Carousel is an auto-scrolling, infinitely looping strip of brand logos.
type Carousel struct {
	widget.BaseWidget

	config   model.CarouselConfig
	logger   *slog.Logger
	do       func(func())
	instant  bool
	resolver *resources.Resolver

	items   []model.Item
	entries []model.LoopEntry
	copies  int
	tiles   []*logoTile
	mirrors []*mirrorTile
	track   *fyne.Container
	scroll  *container.Scroll

	machine      *interaction.Machine
	engine       *autoplay.Engine
	manual       *manual.Controller
	nav          keynav.Controller
	sensor       *motion.Sensor
	ownsSensor   bool
	detachSensor func()

	activeID    string
	loads       context.Context
	cancelLoads context.CancelFunc
	glide       *fyne.Animation
	destroyed   bool
}

var _ desktop.Hoverable = (*Carousel)(nil)

// New creates a carousel showing items.
func New(items []model.Item, options Options) *Carousel {
	config := options.Config
	if config == (model.CarouselConfig{}) {
		config = model.DefaultCarouselConfig()
	}
	config = config.Normalized()
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	do := options.Do
	if do == nil {
		do = fyne.Do
	}
	scheduler := options.Scheduler
	if scheduler == nil {
		scheduler = sched.Dispatched(sched.Real(), do)
	}
	frames := options.Frames
	if frames == nil {
		frames = &animationFrames{}
	}
	resolver := options.Resolver
	if resolver == nil {
		resolver = resources.NewResolver(logger, do)
	}

	c := &Carousel{
		config:   config,
		logger:   logger,
		do:       do,
		instant:  options.InstantScroll,
		resolver: resolver,
		track:    container.NewHBox(),
		sensor:   options.Sensor,
	}
	c.ExtendBaseWidget(c)
	c.scroll = container.NewHScroll(c.track)

	if c.sensor == nil {
		c.sensor = motion.New()
		c.ownsSensor = true
	}

	c.machine = interaction.New(interaction.Config{BlurDebounce: config.BlurDebounce}, scheduler)
	c.engine = autoplay.New(autoplay.Config{
		Velocity:      config.Velocity,
		MaxFrameDelta: config.MaxFrameDelta,
	}, frames, surface{c}, logger)
	c.manual = manual.New(manual.Config{
		Fraction: config.ScrollFraction,
		Grace:    config.ManualGrace,
	}, viewport{c}, glider{c}, c.machine)
	c.nav = keynav.Controller{
		Count: func() int { return len(c.tiles) },
		Focus: c.focusTile,
	}

	c.machine.OnChange(c.applyInteraction)
	c.detachSensor = c.sensor.OnChange(func(reduced bool) {
		c.do(func() {
			c.logger.Info("carousel: motion preference changed", "reduced", reduced)
			c.syncEngine()
		})
	})

	c.SetItems(items)
	return c
}

// CreateRenderer implements fyne.Widget.
func (c *Carousel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.scroll)
}

// Resize lays the carousel out and starts autoplay once a width is known.
func (c *Carousel) Resize(size fyne.Size) {
	if !c.destroyed {
		c.fillViewport(size.Width)
	}
	c.BaseWidget.Resize(size)
	c.syncEngine()
}

// SetItems replaces the displayed items. Identity is by item id, so an
// active item that survives the replacement stays active.
func (c *Carousel) SetItems(items []model.Item) {
	if c.destroyed {
		return
	}
	c.stopGlide()
	c.engine.Stop()
	if c.cancelLoads != nil {
		c.cancelLoads()
	}
	c.loads, c.cancelLoads = context.WithCancel(context.Background())

	c.items = append([]model.Item(nil), items...)
	c.tiles = make([]*logoTile, 0, len(c.items))
	for index, item := range c.items {
		c.tiles = append(c.tiles, newLogoTile(c, index, item))
	}
	c.copies = c.copiesFor(c.Size().Width)
	c.rebuildTrack()

	c.machine.SetItems(model.IDs(c.items))
	c.activeID = c.machine.Snapshot().ActiveID
	c.applyViews()
	c.loadLogos(c.tiles, c.mirrors)

	c.logger.Debug("carousel: items replaced", "items", len(c.items))
	c.syncEngine()
}

// rebuildTrack lays out the interactive tiles followed by c.copies runs of
// mirrors. Existing tiles are kept so focus survives.
func (c *Carousel) rebuildTrack() {
	c.entries = model.BuildLoopCopies(c.items, c.copies)
	c.mirrors = make([]*mirrorTile, 0, len(c.entries)-len(c.tiles))

	objects := make([]fyne.CanvasObject, 0, len(c.entries))
	for _, tile := range c.tiles {
		objects = append(objects, tile)
	}
	for _, entry := range c.entries[len(c.tiles):] {
		mirror := newMirrorTile(entry.Item)
		c.mirrors = append(c.mirrors, mirror)
		objects = append(objects, mirror)
	}
	c.track.Objects = objects
	c.track.Refresh()
	c.scroll.Refresh()
}

// fillViewport adds or removes mirror runs so a viewport of width never
// runs past the end of the track before the offset wraps.
func (c *Carousel) fillViewport(width float32) {
	copies := c.copiesFor(width)
	if copies == c.copies || len(c.items) == 0 {
		return
	}
	c.copies = copies
	c.rebuildTrack()
	c.applyViews()
	c.loadLogos(nil, c.mirrors)
	c.logger.Debug("carousel: mirror runs changed", "copies", copies)
}

func (c *Carousel) copiesFor(width float32) int {
	gap := theme.Padding()
	run := float32(len(c.items)) * (tileWidth + gap)
	return model.CopiesToFill(width, run, gap)
}

// Items returns the displayed items.
func (c *Carousel) Items() []model.Item {
	return append([]model.Item(nil), c.items...)
}

// Views returns the presentation state of every loop entry.
func (c *Carousel) Views() []model.ItemView {
	return model.Present(c.entries, c.activeID, c.config.EagerCount)
}

// Snapshot returns the interaction state.
func (c *Carousel) Snapshot() interaction.Snapshot {
	return c.machine.Snapshot()
}

// State returns the autoplay engine state.
func (c *Carousel) State() autoplay.State {
	return c.engine.State()
}

// Offset returns the current scroll offset.
func (c *Carousel) Offset() float64 {
	return c.engine.Offset()
}

// Subscribe registers an observer for interaction events.
func (c *Carousel) Subscribe(buffer int) <-chan interaction.Event {
	return c.machine.Subscribe(buffer)
}

// ScrollForward scrolls one step forward and pauses autoplay briefly.
func (c *Carousel) ScrollForward() {
	c.manual.Scroll(manual.Forward)
}

// ScrollBackward scrolls one step backward and pauses autoplay briefly.
func (c *Carousel) ScrollBackward() {
	c.manual.Scroll(manual.Backward)
}

// MouseIn implements desktop.Hoverable.
func (c *Carousel) MouseIn(*desktop.MouseEvent) {
	c.machine.PointerEnter()
}

// MouseMoved implements desktop.Hoverable.
func (c *Carousel) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (c *Carousel) MouseOut() {
	c.machine.PointerLeave()
}

// Destroy stops autoplay, cancels pending timers and background loads and
// detaches from the motion sensor. The carousel is inert afterwards.
func (c *Carousel) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.engine.Stop()
	c.stopGlide()
	c.machine.Close()
	if c.detachSensor != nil {
		c.detachSensor()
		c.detachSensor = nil
	}
	if c.ownsSensor {
		c.sensor.Close()
	}
	if c.cancelLoads != nil {
		c.cancelLoads()
	}
}

func (c *Carousel) syncEngine() {
	if c.destroyed {
		return
	}
	c.engine.Sync(len(c.items), c.sensor.Current())
}

func (c *Carousel) applyInteraction(snapshot interaction.Snapshot) {
	c.engine.SetSuspended(snapshot.Suspended())
	if snapshot.ActiveID != c.activeID {
		c.activeID = snapshot.ActiveID
		c.applyViews()
	}
}

func (c *Carousel) applyViews() {
	views := c.Views()
	for _, tile := range c.tiles {
		tile.setView(views[tile.index])
	}
	for index, mirror := range c.mirrors {
		mirror.visual.apply(views[len(c.tiles)+index], false)
	}
}

func (c *Carousel) loadLogos(tiles []*logoTile, mirrors []*mirrorTile) {
	views := c.Views()
	for _, tile := range tiles {
		c.resolver.Load(c.loads, tile.item.Logo, views[tile.index].Loading, tile.visual.setLogo)
	}
	for index, mirror := range mirrors {
		view := views[len(c.tiles)+index]
		c.resolver.Load(c.loads, view.Entry.Item.Logo, view.Loading, mirror.visual.setLogo)
	}
}

func (c *Carousel) focusTile(index int) {
	if index < 0 || index >= len(c.tiles) {
		return
	}
	canvas := fyne.CurrentApp().Driver().CanvasForObject(c)
	if canvas == nil {
		return
	}
	canvas.Focus(c.tiles[index])
}

// revealTile scrolls a focused tile into the viewport.
func (c *Carousel) revealTile(index int) {
	if index < 0 || index >= len(c.tiles) {
		return
	}
	tile := c.tiles[index]
	left := float64(tile.Position().X)
	right := left + float64(tile.Size().Width)
	offset := c.engine.Offset()
	width := float64(c.scroll.Size().Width)
	if width <= 0 {
		return
	}
	if left < offset || right > offset+width {
		c.engine.ScrollBy(float32(left - offset))
	}
}

// loopWidth is the distance from the first original to the first duplicate.
func (c *Carousel) loopWidth() float32 {
	if c.Size().Width <= 0 || len(c.tiles) == 0 {
		return 0
	}
	padding := theme.Padding()
	width := float32(0)
	for _, tile := range c.tiles {
		width += tile.MinSize().Width + padding
	}
	return width
}

func (c *Carousel) glideBy(delta float32) {
	c.stopGlide()
	if c.destroyed {
		return
	}
	if c.instant {
		c.engine.ScrollBy(delta)
		return
	}

	travelled := float32(0)
	var glide *fyne.Animation
	glide = fyne.NewAnimation(glideDuration, func(progress float32) {
		// A glide replaced or stopped in the same frame must not move the new loop.
		if c.glide != glide {
			return
		}
		step := delta*progress - travelled
		travelled += step
		c.engine.ScrollBy(step)
	})
	glide.Curve = fyne.AnimationEaseOut
	c.glide = glide
	glide.Start()
}

func (c *Carousel) stopGlide() {
	if c.glide != nil {
		c.glide.Stop()
		c.glide = nil
	}
}

type surface struct{ c *Carousel }

func (s surface) LoopWidth() float32 { return s.c.loopWidth() }

func (s surface) SetOffset(offset float32) {
	s.c.scroll.Offset = fyne.NewPos(offset, 0)
	s.c.scroll.Refresh()
}

type viewport struct{ c *Carousel }

func (v viewport) ViewportWidth() float32 { return v.c.scroll.Size().Width }

type glider struct{ c *Carousel }

func (g glider) ScrollBy(delta float32) { g.c.glideBy(delta) }
