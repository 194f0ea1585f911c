package parallax

// Header sizes in device-independent units
const (
	DefaultExpandedHeight  float32 = 400
	DefaultCollapsedHeight float32 = 56
)

// Metrics are the fixed layout constants the collapse range is derived from.
type Metrics struct {
	ExpandedHeight  float32
	CollapsedHeight float32
	TopInset        float32 // status bar height on mobile, 0 on desktop
}

// DefaultMetrics returns the metrics of the shipped screen without insets
func DefaultMetrics() Metrics {
	return Metrics{
		ExpandedHeight:  DefaultExpandedHeight,
		CollapsedHeight: DefaultCollapsedHeight,
	}
}

// MaxOffset is the scroll distance over which the header collapses.
// It is zero or negative for degenerate metrics.
func (m Metrics) MaxOffset() float32 {
	return m.ExpandedHeight - m.CollapsedHeight - m.TopInset
}

// ImageHeight is the height of the hero image area above the title bar
func (m Metrics) ImageHeight() float32 {
	return m.ExpandedHeight - m.CollapsedHeight
}

// WithTopInset returns a copy of m using the given inset
func (m Metrics) WithTopInset(inset float32) Metrics {
	m.TopInset = inset
	return m
}
