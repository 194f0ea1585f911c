package layout

// Package layout describes the cooking screen as a tree of positioned
// regions. Render is a pure function of State: the same state always yields
// a deep-equal tree, so any backend (the Fyne widgets, the layoutdump tool,
// tests) can consume it without running a canvas.
