package model

import "image/color"

// RecipeItem is a row in the "Similar Recipes" list
type RecipeItem struct {
	Name       string
	Category   string
	Experience string // skill label shown next to the badge dot
	Image      AssetRef
	BaseColor  color.NRGBA // background of the circular image well
	BadgeColor color.NRGBA // experience badge dot
}

// QuickStat is one icon+label pair of the stats row under the header
type QuickStat struct {
	Icon  AssetRef
	Label string
}

// RecipeDetail holds what the screen shows about the recipe being viewed
type RecipeDetail struct {
	Title       string
	Category    string
	HeroImage   AssetRef
	Description string
	Stats       []QuickStat
}
