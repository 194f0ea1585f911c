package model

// AssetRef names an image in the asset provider. It carries no path or
// format information; resolution is the provider's job.
type AssetRef string

// Image assets used by the cooking screen
const (
	AssetStrawberryPie AssetRef = "strawberry_pie_1"
	AssetHotDog        AssetRef = "hot_dog"
	AssetDoughnut      AssetRef = "doughnut"
	AssetHamburger     AssetRef = "hamburger"
	AssetApplePie      AssetRef = "apple_pie"
	AssetCheesecake    AssetRef = "cheesecake"
	AssetCupcake       AssetRef = "cupcake"
	AssetBerryCake     AssetRef = "berrycake"

	// Icons
	AssetIconClock      AssetRef = "ic_clock"
	AssetIconFlame      AssetRef = "ic_flame"
	AssetIconStar       AssetRef = "ic_star"
	AssetIconFavorite   AssetRef = "ic_favorite"
	AssetIconArrowBack  AssetRef = "ic_arrow_back"
	AssetIconArrowRight AssetRef = "ic_arrow_right"
	AssetIconPlus       AssetRef = "ic_plus"
	AssetIconMinus      AssetRef = "ic_minus"
)

// String returns the ref as a plain string
func (r AssetRef) String() string {
	return string(r)
}

// FoodItem is a card in the "Similar Foods" carousel
type FoodItem struct {
	Name        string
	Description string
	Price       string // already currency formatted, e.g. "45$"
	Image       AssetRef
}
