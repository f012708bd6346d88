package showcase

import (
	"brandcarousel/internal/ui/carousel"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	// Title is the heading shown above the carousel.
	Title = "Partner brands & collaborators"

	BackwardLabel = "Scroll brands backward"
	ForwardLabel  = "Scroll brands forward"

	defaultWidth  = float32(960)
	defaultHeight = float32(320)
)

// Config defines showcase window behaviour.
type Config struct {
	Fullscreen bool
	// HideOnClose keeps the window and its carousel alive when closed, for
	// apps that can show it again from the tray.
	HideOnClose bool
}

// Window hosts the carousel with a heading and navigation buttons.
type Window struct {
	window   fyne.Window
	config   Config
	carousel *carousel.Carousel
	title    *canvas.Text
	backward *widget.Button
	forward  *widget.Button
	onClosed func()
}

// New creates the showcase window around an existing carousel.
func New(app fyne.App, config Config, brands *carousel.Carousel) *Window {
	window := app.NewWindow(Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	title := canvas.NewText(Title, theme.Color(theme.ColorNameForeground))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = theme.TextHeadingSize()

	showcase := &Window{
		window:   window,
		config:   config,
		title:    title,
		backward: widget.NewButtonWithIcon(BackwardLabel, theme.NavigateBackIcon(), nil),
		forward:  widget.NewButtonWithIcon(ForwardLabel, theme.NavigateNextIcon(), nil),
	}
	showcase.SetCarousel(brands)
	window.SetCloseIntercept(showcase.close)
	showcase.applyWindowMode()
	return showcase
}

// SetCarousel swaps the hosted carousel. The previous one is destroyed.
func (showcase *Window) SetCarousel(brands *carousel.Carousel) {
	if showcase.carousel != nil && showcase.carousel != brands {
		showcase.carousel.Destroy()
	}
	showcase.carousel = brands
	showcase.backward.OnTapped = brands.ScrollBackward
	showcase.forward.OnTapped = brands.ScrollForward

	header := container.New(&headerLayout{}, showcase.title, showcase.backward, showcase.forward)
	showcase.window.SetContent(container.NewBorder(header, nil, nil, nil, brands))
}

// Carousel returns the hosted carousel.
func (showcase *Window) Carousel() *carousel.Carousel {
	return showcase.carousel
}

// Show displays the window.
func (showcase *Window) Show() {
	showcase.window.Show()
}

// Hide hides the window. The carousel keeps its state.
func (showcase *Window) Hide() {
	showcase.window.Hide()
}

// SetOnClosed sets the handler called after the window closes.
func (showcase *Window) SetOnClosed(handler func()) {
	showcase.onClosed = handler
}

// UpdateConfig applies new window settings.
func (showcase *Window) UpdateConfig(config Config) {
	showcase.config = config
	showcase.applyWindowMode()
}

// Window returns the underlying fyne window.
func (showcase *Window) Window() fyne.Window {
	return showcase.window
}

func (showcase *Window) close() {
	if showcase.config.HideOnClose {
		showcase.window.Hide()
		return
	}
	showcase.carousel.Destroy()
	showcase.window.Close()
	if showcase.onClosed != nil {
		showcase.onClosed()
	}
}

func (showcase *Window) applyWindowMode() {
	if showcase.config.Fullscreen {
		showcase.window.SetFullScreen(true)
		return
	}
	showcase.window.SetFullScreen(false)
	showcase.window.Resize(fyne.NewSize(defaultWidth, defaultHeight))
	showcase.window.CenterOnScreen()
}

// headerLayout places the title on the left and the two navigation buttons
// on the right, all vertically centred on the tallest object.
type headerLayout struct{}

func (layout *headerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	title := objects[0]
	backward := objects[1]
	forward := objects[2]

	pad := theme.Padding()
	forwardSize := forward.MinSize()
	backwardSize := backward.MinSize()

	x := size.Width - pad - forwardSize.Width
	forward.Move(fyne.NewPos(x, (size.Height-forwardSize.Height)/2))
	forward.Resize(forwardSize)

	x -= pad + backwardSize.Width
	backward.Move(fyne.NewPos(x, (size.Height-backwardSize.Height)/2))
	backward.Resize(backwardSize)

	titleSize := title.MinSize()
	titleWidth := x - pad*2
	if titleWidth < 0 {
		titleWidth = 0
	}
	title.Move(fyne.NewPos(pad, (size.Height-titleSize.Height)/2))
	title.Resize(fyne.NewSize(titleWidth, titleSize.Height))
}

func (layout *headerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	pad := theme.Padding()
	width := pad
	height := float32(0)
	for _, object := range objects {
		minSize := object.MinSize()
		width += minSize.Width + pad
		if minSize.Height > height {
			height = minSize.Height
		}
	}
	return fyne.NewSize(width, height+pad*2)
}
