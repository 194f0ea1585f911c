package parallax

// HeaderStyle holds the tunable constants of the collapse animation.
type HeaderStyle struct {
	BaseInset      float32 // title padding when expanded
	ExtraInset     float32 // padding added at full collapse
	ScaleReduction float32 // title shrinks to 1-ScaleReduction
	Elevation      float32 // shadow depth once collapsed
	GradientStart  float32 // fraction of image height where the scrim begins
	ControlsInset  float32 // horizontal padding of the back/favorite row
}

// DefaultHeaderStyle returns the style of the shipped screen
func DefaultHeaderStyle() HeaderStyle {
	return HeaderStyle{
		BaseInset:      16,
		ExtraInset:     28,
		ScaleReduction: 0.25,
		Elevation:      4,
		GradientStart:  0.4,
		ControlsInset:  16,
	}
}

// HeaderParams is everything a renderer needs to draw the header for one
// scroll position.
type HeaderParams struct {
	Height       float32 // pinned at the expanded height; the header slides, never resizes
	TranslateY   float32 // always <= 0
	ImageHeight  float32
	ImageOpacity float32

	GradientStart float32
	GradientEnd   float32

	TitleBarHeight float32
	TitlePadding   float32
	TitleScale     float32

	Elevation float32
	Elevated  bool

	// The control row never moves with the header
	ControlsTop    float32
	ControlsHeight float32
	ControlsInset  float32

	Progress float32
}

// ComputeHeader derives the header parameters for a scroll state. It is a
// pure function of its inputs.
func ComputeHeader(s State, m Metrics, style HeaderStyle) HeaderParams {
	p := s.Progress
	elevated := s.Collapsed()

	var elevation float32
	if elevated {
		elevation = style.Elevation
	}

	return HeaderParams{
		Height:       m.ExpandedHeight,
		TranslateY:   -s.ClampedOffset,
		ImageHeight:  m.ImageHeight(),
		ImageOpacity: 1 - p,

		GradientStart: style.GradientStart,
		GradientEnd:   1,

		TitleBarHeight: m.CollapsedHeight,
		TitlePadding:   style.BaseInset + style.ExtraInset*p,
		TitleScale:     1 - style.ScaleReduction*p,

		Elevation: elevation,
		Elevated:  elevated,

		ControlsTop:    m.TopInset,
		ControlsHeight: m.CollapsedHeight,
		ControlsInset:  style.ControlsInset,

		Progress: p,
	}
}
