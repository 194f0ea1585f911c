package parallax

// State is the scroll position as seen by the header.
type State struct {
	RawOffset     float32
	ClampedOffset float32
	MaxOffset     float32
	Progress      float32 // 0 expanded, 1 collapsed
}

// Collapsed reports whether the header reached its compact form.
// Degenerate ranges never collapse.
func (s State) Collapsed() bool {
	return s.MaxOffset > 0 && s.ClampedOffset == s.MaxOffset
}

// ClampOffset limits raw to [0, maxOffset]. A non-positive maxOffset yields 0.
func ClampOffset(raw, maxOffset float32) float32 {
	if maxOffset <= 0 || raw <= 0 {
		return 0
	}
	if raw > maxOffset {
		return maxOffset
	}
	return raw
}

// Progress maps a clamped offset to collapse progress. It stays at zero for
// the first two thirds of the range and ramps linearly to one over the last
// third, so the hero image stays fully visible while scrolling starts.
func Progress(clamped, maxOffset float32) float32 {
	if maxOffset <= 0 {
		return 0
	}
	p := (clamped*3 - 2*maxOffset) / maxOffset
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Compute derives the full State for a raw offset
func Compute(raw float32, m Metrics) State {
	maxOffset := m.MaxOffset()
	clamped := ClampOffset(raw, maxOffset)
	return State{
		RawOffset:     raw,
		ClampedOffset: clamped,
		MaxOffset:     maxOffset,
		Progress:      Progress(clamped, maxOffset),
	}
}

// ScrollObserver tracks the offset of the content list. It is driven from
// the UI goroutine and holds no locks.
type ScrollObserver struct {
	metrics   Metrics
	state     State
	listeners []func(State)
}

// NewScrollObserver creates an observer positioned at the top of the list
func NewScrollObserver(m Metrics) *ScrollObserver {
	return &ScrollObserver{
		metrics: m,
		state:   Compute(0, m),
	}
}

// OnChange registers a listener called whenever the derived state changes
func (o *ScrollObserver) OnChange(listener func(State)) {
	o.listeners = append(o.listeners, listener)
}

// Observe records a new raw offset and returns the derived state.
// Listeners only fire if the clamped offset or progress moved; scrolling
// further down a fully collapsed header is a no-op for them.
func (o *ScrollObserver) Observe(raw float32) State {
	next := Compute(raw, o.metrics)
	changed := next.ClampedOffset != o.state.ClampedOffset || next.Progress != o.state.Progress
	o.state = next
	if changed {
		o.notify()
	}
	return next
}

// SetMetrics replaces the metrics, e.g. once the real status bar inset is
// known, and re-derives the state from the last raw offset.
func (o *ScrollObserver) SetMetrics(m Metrics) State {
	o.metrics = m
	o.state = Compute(o.state.RawOffset, m)
	o.notify()
	return o.state
}

// Metrics returns the metrics in use
func (o *ScrollObserver) Metrics() Metrics {
	return o.metrics
}

// State returns the last derived state
func (o *ScrollObserver) State() State {
	return o.state
}

func (o *ScrollObserver) notify() {
	for _, l := range o.listeners {
		l(o.state)
	}
}
