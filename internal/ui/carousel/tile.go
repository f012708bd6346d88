package carousel

import (
	"image/color"

	"brandcarousel/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	tileWidth  = float32(180)
	tileHeight = float32(170)
	logoWidth  = float32(120)
	logoHeight = float32(80)
)

// tileVisual holds the canvas objects shared by interactive and mirror tiles.
type tileVisual struct {
	background  *canvas.Rectangle
	logo        *canvas.Image
	name        *widget.Label
	description *widget.Label
	root        fyne.CanvasObject
}

func newTileVisual(item model.Item) *tileVisual {
	background := canvas.NewRectangle(color.Transparent)
	background.CornerRadius = theme.InputRadiusSize()
	background.StrokeWidth = 2

	logo := canvas.NewImageFromResource(nil)
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(logoWidth, logoHeight))

	name := widget.NewLabelWithStyle(item.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	name.Truncation = fyne.TextTruncateEllipsis

	description := widget.NewLabel(item.Description)
	description.Wrapping = fyne.TextWrapWord
	description.Alignment = fyne.TextAlignCenter
	description.Hide()

	content := container.NewVBox(logo, name, description)
	root := container.NewGridWrap(fyne.NewSize(tileWidth, tileHeight),
		container.NewStack(background, container.NewPadded(content)))

	return &tileVisual{
		background:  background,
		logo:        logo,
		name:        name,
		description: description,
		root:        root,
	}
}

func (visual *tileVisual) setLogo(resource fyne.Resource) {
	visual.logo.Resource = resource
	visual.logo.Refresh()
}

func (visual *tileVisual) apply(view model.ItemView, focused bool) {
	if view.Expanded {
		visual.description.Show()
		visual.background.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		visual.description.Hide()
		visual.background.FillColor = color.Transparent
	}
	if focused {
		visual.background.StrokeColor = theme.Color(theme.ColorNameFocus)
	} else {
		visual.background.StrokeColor = color.Transparent
	}
	visual.background.Refresh()
}

// logoTile is an interactive carousel entry: it can be tapped, focused and
// navigated with the keyboard.
type logoTile struct {
	widget.BaseWidget
	owner   *Carousel
	index   int
	item    model.Item
	view    model.ItemView
	visual  *tileVisual
	focused bool
}

var (
	_ fyne.Tappable  = (*logoTile)(nil)
	_ fyne.Focusable = (*logoTile)(nil)
)

func newLogoTile(owner *Carousel, index int, item model.Item) *logoTile {
	tile := &logoTile{
		owner:  owner,
		index:  index,
		item:   item,
		visual: newTileVisual(item),
	}
	tile.ExtendBaseWidget(tile)
	return tile
}

func (tile *logoTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tile.visual.root)
}

func (tile *logoTile) setView(view model.ItemView) {
	tile.view = view
	tile.visual.apply(view, tile.focused)
}

// Tapped toggles the item's expanded state.
func (tile *logoTile) Tapped(*fyne.PointEvent) {
	tile.owner.machine.Activate(tile.item.ID)
}

func (tile *logoTile) FocusGained() {
	tile.focused = true
	tile.visual.apply(tile.view, true)
	tile.owner.machine.ItemFocus(tile.item.ID)
	tile.owner.revealTile(tile.index)
}

func (tile *logoTile) FocusLost() {
	tile.focused = false
	tile.visual.apply(tile.view, false)
	tile.owner.machine.ItemBlur()
}

func (tile *logoTile) TypedRune(rune) {}

func (tile *logoTile) TypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
		tile.owner.machine.Activate(tile.item.ID)
		return
	}
	tile.owner.nav.HandleKey(tile.index, event.Name)
}

// mirrorTile renders a duplicate entry. It is not focusable and ignores
// input, so keyboard traversal only ever visits the originals.
type mirrorTile struct {
	widget.BaseWidget
	visual *tileVisual
}

func newMirrorTile(item model.Item) *mirrorTile {
	tile := &mirrorTile{visual: newTileVisual(item)}
	tile.ExtendBaseWidget(tile)
	return tile
}

func (tile *mirrorTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tile.visual.root)
}
