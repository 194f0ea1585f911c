package model

// DefaultServings is the serving count a freshly opened recipe starts with
const DefaultServings = 6

// ServingCount is the only mutable state of the screen. It is not bounded:
// decrementing past zero yields negative counts.
type ServingCount struct {
	value    int
	onChange func(int)
}

// NewServingCount creates a counter starting at initial
func NewServingCount(initial int) *ServingCount {
	return &ServingCount{value: initial}
}

// Value returns the current count
func (s *ServingCount) Value() int {
	return s.value
}

// Increment adds one serving
func (s *ServingCount) Increment() {
	s.set(s.value + 1)
}

// Decrement removes one serving
func (s *ServingCount) Decrement() {
	s.set(s.value - 1)
}

// SetChangeCallback registers the function called after every change
func (s *ServingCount) SetChangeCallback(callback func(int)) {
	s.onChange = callback
}

func (s *ServingCount) set(v int) {
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
}
