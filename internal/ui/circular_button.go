package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// circularIconInset is the padding between the button edge and its icon
const circularIconInset float32 = 8

// CircularButton is the small square icon button used for the header
// controls and the serving calculator.
type CircularButton struct {
	widget.BaseWidget

	icon     fyne.Resource
	fill     color.Color
	elevated bool

	OnTapped func()
}

// NewCircularButton creates a white icon button. Elevated buttons cast a
// shadow so they stay readable over the hero image.
func NewCircularButton(icon fyne.Resource, elevated bool, onTapped func()) *CircularButton {
	b := &CircularButton{
		icon:     icon,
		fill:     White,
		elevated: elevated,
		OnTapped: onTapped,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetFill changes the background colour
func (b *CircularButton) SetFill(c color.Color) {
	b.fill = c
	b.Refresh()
}

// Tapped implements fyne.Tappable
func (b *CircularButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// CreateRenderer creates the widget renderer
func (b *CircularButton) CreateRenderer() fyne.WidgetRenderer {
	shadow := canvas.NewRectangle(ShadowColor)
	shadow.CornerRadius = ButtonCornerRadius
	if !b.elevated {
		shadow.Hide()
	}

	background := canvas.NewRectangle(b.fill)
	background.CornerRadius = ButtonCornerRadius

	icon := canvas.NewImageFromResource(b.icon)
	icon.FillMode = canvas.ImageFillContain

	return &circularButtonRenderer{
		button:     b,
		shadow:     shadow,
		background: background,
		icon:       icon,
	}
}

type circularButtonRenderer struct {
	button     *CircularButton
	shadow     *canvas.Rectangle
	background *canvas.Rectangle
	icon       *canvas.Image
}

func (r *circularButtonRenderer) Layout(size fyne.Size) {
	r.shadow.Move(fyne.NewPos(0, 2))
	r.shadow.Resize(size)
	r.background.Resize(size)
	r.icon.Move(fyne.NewPos(circularIconInset, circularIconInset))
	r.icon.Resize(fyne.NewSize(size.Width-2*circularIconInset, size.Height-2*circularIconInset))
}

func (r *circularButtonRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(CircularButtonSize)
}

func (r *circularButtonRenderer) Refresh() {
	r.background.FillColor = r.button.fill
	r.icon.Resource = r.button.icon
	r.background.Refresh()
	r.icon.Refresh()
}

func (r *circularButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.shadow, r.background, r.icon}
}

func (r *circularButtonRenderer) Destroy() {}
