package parallax

// Package parallax turns the scroll offset of the recipe content into the
// visual parameters of the collapsing header. Everything here is pure float
// math with no Fyne dependency so it can drive any renderer and be tested
// without a canvas.
