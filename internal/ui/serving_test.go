package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/model"
)

func TestServingCalculator_Taps(t *testing.T) {
	test.NewApp()

	count := model.NewServingCount(model.DefaultServings)
	calc := NewServingCalculator(count, assets.NewEmbedded(), config.Default().Palette)

	var seen []int
	calc.OnChanged = func(v int) { seen = append(seen, v) }

	assert.Equal(t, "6", calc.Count())

	test.Tap(calc.IncrementButton())
	assert.Equal(t, "7", calc.Count())
	assert.Equal(t, 7, count.Value())

	test.Tap(calc.DecrementButton())
	test.Tap(calc.DecrementButton())
	assert.Equal(t, "5", calc.Count())
	assert.Equal(t, []int{7, 6, 5}, seen)
}

func TestServingCalculator_GoesNegative(t *testing.T) {
	test.NewApp()

	count := model.NewServingCount(model.DefaultServings)
	calc := NewServingCalculator(count, assets.NewEmbedded(), config.Default().Palette)

	for i := 0; i < 7; i++ {
		test.Tap(calc.DecrementButton())
	}
	assert.Equal(t, "-1", calc.Count())
}
