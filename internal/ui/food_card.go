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

// FoodCard is one card of the similar foods carousel
type FoodCard struct {
	widget.BaseWidget

	food     model.FoodItem
	provider assets.Provider
	palette  config.PaletteConfig

	// Callbacks
	onOpen func(model.FoodItem)
	onAdd  func(model.FoodItem)
}

// NewFoodCard creates a card for food
func NewFoodCard(food model.FoodItem, provider assets.Provider, palette config.PaletteConfig) *FoodCard {
	c := &FoodCard{
		food:     food,
		provider: provider,
		palette:  palette,
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetCallbacks sets the open and add callbacks
func (c *FoodCard) SetCallbacks(onOpen, onAdd func(model.FoodItem)) {
	c.onOpen = onOpen
	c.onAdd = onAdd
}

// Food returns the displayed item
func (c *FoodCard) Food() model.FoodItem {
	return c.food
}

// Tapped opens the food
func (c *FoodCard) Tapped(*fyne.PointEvent) {
	if c.onOpen != nil {
		c.onOpen(c.food)
	}
}

// CreateRenderer creates the widget renderer
func (c *FoodCard) CreateRenderer() fyne.WidgetRenderer {
	body := canvas.NewRectangle(c.palette.LightGray.NRGBA)
	body.CornerRadius = CardCornerRadius

	name := canvas.NewText(c.food.Name, c.palette.Foreground.NRGBA)
	name.TextSize = FoodNameTextSize
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Alignment = fyne.TextAlignCenter

	desc := canvas.NewText(c.food.Description, c.palette.DarkGray.NRGBA)
	desc.TextSize = BodyTextSize
	desc.Alignment = fyne.TextAlignCenter

	price := canvas.NewText(c.food.Price, c.palette.Pink.NRGBA)
	price.TextSize = FoodNameTextSize
	price.TextStyle = fyne.TextStyle{Bold: true}

	add := NewCircularButton(assets.Resolve(c.provider, model.AssetIconPlus), false, func() {
		if c.onAdd != nil {
			c.onAdd(c.food)
		}
	})
	add.SetFill(c.palette.Pink.NRGBA)

	return &foodCardRenderer{
		card:  c,
		body:  body,
		image: newAssetImage(c.provider, c.food.Image, 0),
		name:  name,
		desc:  desc,
		price: price,
		add:   add,
	}
}

type foodCardRenderer struct {
	card *FoodCard

	body  *canvas.Rectangle
	image *canvas.Image
	name  *canvas.Text
	desc  *canvas.Text
	price *canvas.Text
	add   *CircularButton
}

func (r *foodCardRenderer) Layout(fyne.Size) {
	f := layout.ComputeFoodCardFrames()
	place(r.body, f.Body)
	place(r.image, f.Image)
	place(r.name, f.Name)
	place(r.desc, f.Description)
	place(r.price, f.Price)
	place(r.add, f.Add)
}

func (r *foodCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(layout.FoodCardWidth, layout.FoodCardHeight)
}

func (r *foodCardRenderer) Refresh() {
	for _, o := range r.Objects() {
		o.Refresh()
	}
}

func (r *foodCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.body, r.image, r.name, r.desc, r.price, r.add}
}

func (r *foodCardRenderer) Destroy() {}
