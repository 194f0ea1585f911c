package ui

import (
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/layout"
	"github.com/ytget/cooking/internal/model"
)

// ServingCalculator shows the serving count with minus and plus buttons
type ServingCalculator struct {
	widget.BaseWidget

	count   *model.ServingCount
	palette config.PaletteConfig

	// UI components
	background *canvas.Rectangle
	label      *canvas.Text
	value      *canvas.Text
	minus      *CircularButton
	plus       *CircularButton

	// OnChanged is called with the new count after the label updated
	OnChanged func(int)
}

// NewServingCalculator creates a calculator bound to count
func NewServingCalculator(count *model.ServingCount, provider assets.Provider, palette config.PaletteConfig) *ServingCalculator {
	s := &ServingCalculator{
		count:   count,
		palette: palette,
	}
	s.ExtendBaseWidget(s)
	s.createUI(provider)

	count.SetChangeCallback(func(v int) {
		slog.Debug("serving count changed", "value", v)
		s.value.Text = strconv.Itoa(v)
		s.value.Refresh()
		if s.OnChanged != nil {
			s.OnChanged(v)
		}
	})
	return s
}

// createUI creates the UI components
func (s *ServingCalculator) createUI(provider assets.Provider) {
	s.background = canvas.NewRectangle(s.palette.LightGray.NRGBA)
	s.background.CornerRadius = ButtonCornerRadius
	s.background.SetMinSize(fyne.NewSize(0, layout.ServingRowHeight))

	s.label = canvas.NewText(TextServing, s.palette.Foreground.NRGBA)
	s.label.TextSize = RecipeNameTextSize
	s.label.TextStyle = fyne.TextStyle{Bold: true}

	s.value = canvas.NewText(strconv.Itoa(s.count.Value()), s.palette.Foreground.NRGBA)
	s.value.TextSize = RecipeNameTextSize
	s.value.Alignment = fyne.TextAlignCenter

	s.minus = NewCircularButton(assets.Resolve(provider, model.AssetIconMinus), false, s.count.Decrement)
	s.plus = NewCircularButton(assets.Resolve(provider, model.AssetIconPlus), false, s.count.Increment)
}

// Count returns the displayed count text
func (s *ServingCalculator) Count() string {
	return s.value.Text
}

// DecrementButton returns the minus button
func (s *ServingCalculator) DecrementButton() *CircularButton {
	return s.minus
}

// IncrementButton returns the plus button
func (s *ServingCalculator) IncrementButton() *CircularButton {
	return s.plus
}

// CreateRenderer creates the widget renderer
func (s *ServingCalculator) CreateRenderer() fyne.WidgetRenderer {
	controls := container.NewHBox(
		container.NewCenter(s.minus),
		container.NewPadded(s.value),
		container.NewCenter(s.plus),
	)
	row := container.NewBorder(nil, nil, container.NewCenter(s.label), controls)
	return widget.NewSimpleRenderer(container.NewStack(
		s.background,
		container.NewPadded(row),
	))
}
