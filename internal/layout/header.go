package layout

import "github.com/ytget/cooking/internal/parallax"

// Header element sizes
const (
	ChipHeight      float32 = 32
	ChipPadding     float32 = 16 // horizontal text padding inside the chip
	ChipInset       float32 = 16 // distance from the image edges
	ControlSize     float32 = 38
	TitleTextSize   float32 = 26
	ShadowMaxHeight float32 = 8
)

// HeaderFrames are the header regions relative to the toolbar's top-left
// corner, except Back and Favorite which are screen coordinates.
type HeaderFrames struct {
	Toolbar  Rect // screen coordinates, Y carries the translation
	Image    Rect
	Gradient Rect
	Chip     Rect
	TitleBar Rect
	Title    Rect
	Shadow   Rect
	Back     Rect
	Favorite Rect
}

// ComputeHeaderFrames lays out the header for the given params. chip is the
// measured size of the category chip; a zero width falls back to an
// estimate.
func ComputeHeaderFrames(p parallax.HeaderParams, width float32, chip Size) HeaderFrames {
	if chip.H <= 0 {
		chip.H = ChipHeight
	}

	gradientTop := p.ImageHeight * p.GradientStart
	gradientBottom := p.ImageHeight * p.GradientEnd

	titleWidth := width - 2*p.TitlePadding
	if titleWidth < 0 {
		titleWidth = 0
	}

	controlY := p.ControlsTop + (p.ControlsHeight-ControlSize)/2

	var shadow float32
	if p.Elevated {
		shadow = p.Elevation
		if shadow > ShadowMaxHeight {
			shadow = ShadowMaxHeight
		}
	}

	return HeaderFrames{
		Toolbar:  Rect{X: 0, Y: p.TranslateY, W: width, H: p.Height},
		Image:    Rect{X: 0, Y: 0, W: width, H: p.ImageHeight},
		Gradient: Rect{X: 0, Y: gradientTop, W: width, H: gradientBottom - gradientTop},
		Chip: Rect{
			X: ChipInset,
			Y: p.ImageHeight - ChipInset - chip.H,
			W: chip.W,
			H: chip.H,
		},
		TitleBar: Rect{X: 0, Y: p.ImageHeight, W: width, H: p.TitleBarHeight},
		Title:    Rect{X: p.TitlePadding, Y: p.ImageHeight, W: titleWidth, H: p.TitleBarHeight},
		Shadow:   Rect{X: 0, Y: p.Height, W: width, H: shadow},
		Back:     Rect{X: p.ControlsInset, Y: controlY, W: ControlSize, H: ControlSize},
		Favorite: Rect{X: width - p.ControlsInset - ControlSize, Y: controlY, W: ControlSize, H: ControlSize},
	}
}

// EstimateChipSize guesses the chip size for headless renderers that cannot
// measure text.
func EstimateChipSize(text string) Size {
	return Size{W: EstimateTextWidth(text, BodyTextSize) + 2*ChipPadding, H: ChipHeight}
}
