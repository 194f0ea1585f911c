package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/layout"
	"github.com/ytget/cooking/internal/model"
)

// wellInset is the padding between the coloured well and the dish image
const wellInset float32 = 12

// RecipeRow is one row of the similar recipes list
type RecipeRow struct {
	widget.BaseWidget

	recipe   model.RecipeItem
	provider assets.Provider
	palette  config.PaletteConfig

	OnTapped func(model.RecipeItem)
}

// NewRecipeRow creates a row for recipe
func NewRecipeRow(recipe model.RecipeItem, provider assets.Provider, palette config.PaletteConfig) *RecipeRow {
	r := &RecipeRow{
		recipe:   recipe,
		provider: provider,
		palette:  palette,
	}
	r.ExtendBaseWidget(r)
	return r
}

// Recipe returns the displayed item
func (r *RecipeRow) Recipe() model.RecipeItem {
	return r.recipe
}

// Tapped opens the recipe
func (r *RecipeRow) Tapped(*fyne.PointEvent) {
	if r.OnTapped != nil {
		r.OnTapped(r.recipe)
	}
}

// CreateRenderer creates the widget renderer
func (r *RecipeRow) CreateRenderer() fyne.WidgetRenderer {
	name := canvas.NewText(r.recipe.Name, r.palette.Foreground.NRGBA)
	name.TextSize = RecipeNameTextSize
	name.TextStyle = fyne.TextStyle{Bold: true}

	category := canvas.NewText(r.recipe.Category, r.palette.DarkGray.NRGBA)
	category.TextSize = BodyTextSize

	experience := canvas.NewText(r.recipe.Experience, r.palette.DarkGray.NRGBA)
	experience.TextSize = BodyTextSize

	return &recipeRowRenderer{
		row:        r,
		well:       canvas.NewCircle(r.recipe.BaseColor),
		image:      newAssetImage(r.provider, r.recipe.Image, 0),
		name:       name,
		category:   category,
		badge:      canvas.NewCircle(r.recipe.BadgeColor),
		experience: experience,
		chevron:    newAssetImage(r.provider, model.AssetIconArrowRight, layout.RecipeChevronWidth),
	}
}

type recipeRowRenderer struct {
	row *RecipeRow

	well       *canvas.Circle
	image      *canvas.Image
	name       *canvas.Text
	category   *canvas.Text
	badge      *canvas.Circle
	experience *canvas.Text
	chevron    *canvas.Image
}

func (r *recipeRowRenderer) Layout(size fyne.Size) {
	f := layout.ComputeRecipeRowFrames(size.Width)

	place(r.well, f.Image)
	img := f.Image
	img.X += wellInset
	img.Y += wellInset
	img.W -= 2 * wellInset
	img.H -= 2 * wellInset
	place(r.image, img)

	place(r.name, f.Name)
	place(r.category, f.Category)
	place(r.badge, f.Badge)
	place(r.experience, f.Experience)
	place(r.chevron, f.Chevron)
}

func (r *recipeRowRenderer) MinSize() fyne.Size {
	return fyne.NewSize(layout.RecipeRowHeight, layout.RecipeRowHeight-layout.RecipeRowGap)
}

func (r *recipeRowRenderer) Refresh() {
	r.well.FillColor = r.row.recipe.BaseColor
	r.badge.FillColor = r.row.recipe.BadgeColor
	for _, o := range r.Objects() {
		o.Refresh()
	}
}

func (r *recipeRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.well, r.image, r.name, r.category, r.badge, r.experience, r.chevron}
}

func (r *recipeRowRenderer) Destroy() {}
