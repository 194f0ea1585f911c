package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/model"
)

// newInfoRow builds the evenly spaced quick stats row
func newInfoRow(stats []model.QuickStat, provider assets.Provider, palette config.PaletteConfig) fyne.CanvasObject {
	if len(stats) == 0 {
		return container.NewVBox()
	}

	cells := make([]fyne.CanvasObject, 0, len(stats))
	for _, stat := range stats {
		label := canvas.NewText(stat.Label, palette.DarkGray.NRGBA)
		label.TextSize = BodyTextSize
		label.Alignment = fyne.TextAlignCenter

		cells = append(cells, container.NewVBox(
			container.NewCenter(newAssetImage(provider, stat.Icon, InfoIconSize)),
			label,
		))
	}
	return container.NewPadded(container.NewGridWithColumns(len(stats), cells...))
}

// newDescription builds the wrapped description paragraph
func newDescription(text string) fyne.CanvasObject {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return container.NewPadded(label)
}

// newSectionHeader builds a title/subtitle pair with a trailing text button
func newSectionHeader(title, subtitle, actionText string, icon fyne.Resource, palette config.PaletteConfig, onTapped func()) fyne.CanvasObject {
	t := canvas.NewText(title, palette.Foreground.NRGBA)
	t.TextSize = RecipeNameTextSize
	t.TextStyle = fyne.TextStyle{Bold: true}

	sub := canvas.NewText(subtitle, palette.DarkGray.NRGBA)
	sub.TextSize = BodyTextSize

	btn := widget.NewButtonWithIcon(actionText, icon, onTapped)
	btn.Importance = widget.LowImportance
	btn.IconPlacement = widget.ButtonIconTrailingText

	return container.NewPadded(container.NewBorder(nil, nil, nil, container.NewCenter(btn), container.NewVBox(t, sub)))
}

// newShoppingListButton builds the full width call to action
func newShoppingListButton(onTapped func()) *widget.Button {
	btn := widget.NewButton(TextAddToShoppingList, onTapped)
	btn.Importance = widget.HighImportance
	return btn
}
