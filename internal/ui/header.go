package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/layout"
	"github.com/ytget/cooking/internal/model"
	"github.com/ytget/cooking/internal/parallax"
)

// ParallaxHeader draws the collapsing toolbar: hero image, scrim, category
// chip, title bar and the elevation shadow. Position and translation are
// owned by the parent layout; the header only draws what Apply gives it.
type ParallaxHeader struct {
	widget.BaseWidget

	detail   model.RecipeDetail
	provider assets.Provider
	palette  config.PaletteConfig

	params parallax.HeaderParams
}

// NewParallaxHeader creates a header for detail in its initial state
func NewParallaxHeader(detail model.RecipeDetail, provider assets.Provider, palette config.PaletteConfig, params parallax.HeaderParams) *ParallaxHeader {
	h := &ParallaxHeader{
		detail:   detail,
		provider: provider,
		palette:  palette,
		params:   params,
	}
	h.ExtendBaseWidget(h)
	return h
}

// Apply updates the header for a new scroll position. It reports whether
// anything changed.
func (h *ParallaxHeader) Apply(p parallax.HeaderParams) bool {
	if p == h.params {
		return false
	}
	h.params = p
	h.Refresh()
	return true
}

// Params returns the currently applied parameters
func (h *ParallaxHeader) Params() parallax.HeaderParams {
	return h.params
}

// Frames returns the regions the renderer uses at width
func (h *ParallaxHeader) Frames(width float32) layout.HeaderFrames {
	return layout.ComputeHeaderFrames(h.params, width, h.chipSize())
}

func (h *ParallaxHeader) chipSize() layout.Size {
	text := fyne.MeasureText(h.detail.Category, BodyTextSize, fyne.TextStyle{Bold: true})
	return layout.Size{W: text.Width + 2*layout.ChipPadding, H: layout.ChipHeight}
}

// CreateRenderer creates the widget renderer
func (h *ParallaxHeader) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(h.palette.Background.NRGBA)

	image := canvas.NewImageFromResource(assets.Resolve(h.provider, h.detail.HeroImage))
	image.FillMode = canvas.ImageFillContain

	scrim := canvas.NewVerticalGradient(TransparentColor, h.palette.Background.NRGBA)

	chip := canvas.NewRectangle(h.palette.Pink.NRGBA)
	chip.CornerRadius = layout.ChipHeight / 2

	chipText := canvas.NewText(h.detail.Category, White)
	chipText.TextSize = BodyTextSize
	chipText.TextStyle = fyne.TextStyle{Bold: true}
	chipText.Alignment = fyne.TextAlignCenter

	title := canvas.NewText(h.detail.Title, h.palette.Foreground.NRGBA)
	title.TextSize = TitleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}

	shadow := canvas.NewVerticalGradient(ShadowColor, TransparentColor)

	r := &headerRenderer{
		header:     h,
		background: background,
		image:      image,
		scrim:      scrim,
		chip:       chip,
		chipText:   chipText,
		title:      title,
		shadow:     shadow,
	}
	r.applyStyle()
	return r
}

type headerRenderer struct {
	header *ParallaxHeader

	background *canvas.Rectangle
	image      *canvas.Image
	scrim      *canvas.LinearGradient
	chip       *canvas.Rectangle
	chipText   *canvas.Text
	title      *canvas.Text
	shadow     *canvas.LinearGradient
}

func (r *headerRenderer) Layout(size fyne.Size) {
	p := r.header.params
	f := r.header.Frames(size.Width)

	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(fyne.NewSize(size.Width, p.Height))

	place(r.image, f.Image)
	place(r.scrim, f.Gradient)
	place(r.chip, f.Chip)
	place(r.chipText, f.Chip)

	// Left aligned and vertically centred in the title bar
	textSize := r.title.MinSize()
	r.title.Move(fyne.NewPos(f.Title.X, f.Title.Y+(f.Title.H-textSize.Height)/2))
	r.title.Resize(fyne.NewSize(f.Title.W, textSize.Height))

	place(r.shadow, f.Shadow)
}

func (r *headerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, r.header.params.Height)
}

// applyStyle copies the progress driven properties onto the canvas objects
func (r *headerRenderer) applyStyle() {
	p := r.header.params

	r.image.Translucency = float64(1 - p.ImageOpacity)
	r.chip.FillColor = fade(r.header.palette.Pink.NRGBA, p.ImageOpacity)
	r.chipText.Color = fade(White, p.ImageOpacity)
	r.title.TextSize = TitleTextSize * p.TitleScale

	if p.Elevated {
		r.shadow.Show()
	} else {
		r.shadow.Hide()
	}
}

func (r *headerRenderer) Refresh() {
	r.applyStyle()
	r.Layout(r.header.Size())
	for _, o := range r.Objects() {
		o.Refresh()
	}
}

func (r *headerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image, r.scrim, r.chip, r.chipText, r.title, r.shadow}
}

func (r *headerRenderer) Destroy() {}

// fade scales the alpha channel of c by opacity
func fade(c color.NRGBA, opacity float32) color.NRGBA {
	if opacity <= 0 {
		c.A = 0
		return c
	}
	if opacity < 1 {
		c.A = uint8(float32(c.A) * opacity)
	}
	return c
}
