package layout

import (
	"strings"
	"unicode/utf8"
)

// Text metrics used when no font measurer is available
const (
	BodyTextSize     float32 = 14
	avgGlyphWidth    float32 = 0.55 // of the text size
	lineHeightFactor float32 = 1.4
)

// EstimateTextWidth approximates the rendered width of a single line
func EstimateTextWidth(text string, size float32) float32 {
	return float32(utf8.RuneCountInString(text)) * size * avgGlyphWidth
}

// EstimateTextHeight approximates the height of text wrapped to width
func EstimateTextHeight(text string, size, width float32) float32 {
	lineHeight := size * lineHeightFactor
	if width <= 0 || text == "" {
		return lineHeight
	}

	maxRunes := int(width / (size * avgGlyphWidth))
	if maxRunes < 1 {
		maxRunes = 1
	}

	lines, current := 1, 0
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		switch {
		case current == 0:
			current = n
		case current+1+n <= maxRunes:
			current += 1 + n
		default:
			lines++
			current = n
		}
		for current > maxRunes {
			lines++
			current -= maxRunes
		}
	}
	return float32(lines) * lineHeight
}
