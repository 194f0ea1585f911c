package model

import "image/color"

// The cooking screen ships a fixed data set. Every accessor returns a fresh
// copy so callers may reorder or filter without affecting other callers.

const strawberryCakeDescription = "This Dessert is very tasty and not very hard to prepare. " +
	"and please pay attention that you can replace strawberry with any another fruit you like"

// Badge colors for experience levels
var (
	BadgeBeginner    = color.NRGBA{R: 0x8c, G: 0xd6, B: 0x94, A: 0xff}
	BadgeExperienced = color.NRGBA{R: 0x7c, G: 0x89, B: 0xff, A: 0xff}
)

// DefaultDetail returns the recipe shown by the screen
func DefaultDetail() RecipeDetail {
	return RecipeDetail{
		Title:       "StrawBerry cake",
		Category:    "Desert",
		HeroImage:   AssetStrawberryPie,
		Description: strawberryCakeDescription,
		Stats: []QuickStat{
			{Icon: AssetIconClock, Label: "60 min"},
			{Icon: AssetIconFlame, Label: "735 kcal"},
			{Icon: AssetIconStar, Label: "4.7"},
		},
	}
}

// SimilarFoods returns the cards of the "Similar Foods" carousel
func SimilarFoods() []FoodItem {
	return []FoodItem{
		{Name: "Hot Dog", Description: "Fast Foods", Price: "45$", Image: AssetHotDog},
		{Name: "Doughnut", Description: "Dessert", Price: "32$", Image: AssetDoughnut},
		{Name: "Hamburger", Description: "Fast Foods", Price: "56$", Image: AssetHamburger},
		{Name: "Apple Pie", Description: "Cookies", Price: "26$", Image: AssetApplePie},
	}
}

// SimilarRecipes returns the rows of the "Similar Recipes" list
func SimilarRecipes() []RecipeItem {
	return []RecipeItem{
		{
			Name:       "Cheesecake",
			Category:   "Dessert",
			Experience: "Beginner",
			Image:      AssetCheesecake,
			BaseColor:  color.NRGBA{R: 0xcb, G: 0xe8, B: 0xe0, A: 0xff},
			BadgeColor: BadgeBeginner,
		},
		{
			Name:       "Cupcake",
			Category:   "Dessert",
			Experience: "+2 years Experience",
			Image:      AssetCupcake,
			BaseColor:  color.NRGBA{R: 0xe8, G: 0xd0, B: 0xff, A: 0xff},
			BadgeColor: BadgeExperienced,
		},
		{
			Name:       "Berry Cake",
			Category:   "Breakfast",
			Experience: "Beginner",
			Image:      AssetBerryCake,
			BaseColor:  color.NRGBA{R: 0xfa, G: 0xe9, B: 0xd4, A: 0xff},
			BadgeColor: BadgeBeginner,
		},
	}
}
