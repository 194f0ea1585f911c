package ui

import (
	"image/color"

	"github.com/ytget/cooking/internal/layout"
)

// Text fragments
const (
	TextServing           = "Serving"
	TextAddToShoppingList = "Add to shopping list"
	TextSimilarFoods      = "Similar Foods"
	TextSimilarFoodsSub   = "You may like these..."
	TextShowMore          = "Show more"
	TextSimilarRecipes    = "Similar Recipes"
	TextSimilarRecipesSub = "You can also read these..."
	TextSeeAll            = "See All"
)

// Text sizes
const (
	TitleTextSize      float32 = layout.TitleTextSize
	RecipeNameTextSize float32 = 18
	FoodNameTextSize   float32 = 16
	BodyTextSize       float32 = layout.BodyTextSize
)

// Corner radii
const (
	ButtonCornerRadius float32 = 4
	CardCornerRadius   float32 = 16
)

// Layout sizing
const (
	CircularButtonSize = layout.ControlSize
	InfoIconSize       = layout.InfoIconSize
)

// Fixed colors not taken from the palette
var (
	ShadowColor      = color.NRGBA{A: 0x40}
	TransparentColor = color.NRGBA{}
	White            = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
