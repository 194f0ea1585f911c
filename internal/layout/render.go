package layout

import (
	"fmt"
	"strconv"

	"github.com/ytget/cooking/internal/model"
	"github.com/ytget/cooking/internal/parallax"
)

// Content sizes shared with the Fyne widgets
const (
	SectionPadding      float32 = 16
	SectionGap          float32 = 8
	InfoIconSize        float32 = 24
	InfoLabelHeight     float32 = 20
	ServingRowHeight    float32 = 54
	CTAButtonHeight     float32 = 52
	SectionHeaderHeight float32 = 44
	SectionActionWidth  float32 = 110
	FoodCardWidth       float32 = 170
	FoodCardHeight      float32 = 250
	FoodCardPadding     float32 = 8
	FoodCardBodyRatio   float32 = 0.7
	FoodCardImageRatio  float32 = 0.6
	FoodAddButtonWidth  float32 = 38
	RecipeRowHeight     float32 = 120
	RecipeRowGap        float32 = 16
	RecipeBadgeSize     float32 = 18
	RecipeChevronWidth  float32 = 24
)

// State is everything the screen's appearance depends on
type State struct {
	Width  float32
	Height float32

	Scroll      parallax.State
	FoodsOffset float32 // horizontal scroll of the food carousel
	Servings    int

	Metrics parallax.Metrics
	Style   parallax.HeaderStyle

	Detail  model.RecipeDetail
	Foods   []model.FoodItem
	Recipes []model.RecipeItem
}

// DefaultState returns the state of a freshly opened screen
func DefaultState(width, height float32) State {
	m := parallax.DefaultMetrics()
	return State{
		Width:    width,
		Height:   height,
		Scroll:   parallax.Compute(0, m),
		Servings: model.DefaultServings,
		Metrics:  m,
		Style:    parallax.DefaultHeaderStyle(),
		Detail:   model.DefaultDetail(),
		Foods:    model.SimilarFoods(),
		Recipes:  model.SimilarRecipes(),
	}
}

// WithScroll returns a copy of s scrolled to raw
func (s State) WithScroll(raw float32) State {
	s.Scroll = parallax.Compute(raw, s.Metrics)
	return s
}

// Render lays out the whole screen. The content list is drawn first, the
// header on top of it, and the control row on top of both.
func Render(s State) *Node {
	header := parallax.ComputeHeader(s.Scroll, s.Metrics, s.Style)

	root := newNode("screen", KindScreen, Rect{W: s.Width, H: s.Height})
	return root.add(
		renderContent(s),
		renderHeader(header, s),
		renderControls(header, s.Width),
	)
}

func renderHeader(p parallax.HeaderParams, s State) *Node {
	f := ComputeHeaderFrames(p, s.Width, EstimateChipSize(s.Detail.Category))

	header := newNode("header", KindHeader, f.Toolbar)
	header.Elevation = p.Elevation

	image := newNode("header.image", KindImage, f.Image)
	image.Image = s.Detail.HeroImage
	image.Opacity = p.ImageOpacity

	gradient := newNode("header.gradient", KindGradient, f.Gradient)

	// The chip sits on the image and fades with it.
	chip := newNode("header.category", KindChip, f.Chip)
	chip.Text = s.Detail.Category
	chip.Opacity = p.ImageOpacity

	title := newNode("header.title", KindText, f.Title)
	title.Text = s.Detail.Title
	title.Scale = p.TitleScale

	header.add(image, gradient, chip, newNode("header.titlebar", KindRow, f.TitleBar).add(title))

	if p.Elevated {
		shadow := newNode("header.shadow", KindShadow, f.Shadow)
		shadow.Elevation = p.Elevation
		header.add(shadow)
	}
	return header
}

func renderControls(p parallax.HeaderParams, width float32) *Node {
	f := ComputeHeaderFrames(p, width, Size{})

	row := newNode("controls", KindRow, Rect{Y: p.ControlsTop, W: width, H: p.ControlsHeight})

	back := newNode("controls.back", KindIconButton, relativeTo(f.Back, p.ControlsTop))
	back.Image = model.AssetIconArrowBack
	favorite := newNode("controls.favorite", KindIconButton, relativeTo(f.Favorite, p.ControlsTop))
	favorite.Image = model.AssetIconFavorite

	return row.add(back, favorite)
}

func relativeTo(r Rect, top float32) Rect {
	r.Y -= top
	return r
}

func renderContent(s State) *Node {
	w := s.Width
	inner := w - 2*SectionPadding
	y := s.Metrics.ExpandedHeight

	content := newNode("content", KindContent, Rect{Y: -s.Scroll.RawOffset, W: w})

	info := renderInfoRow(s.Detail.Stats, w, y)
	y = info.Frame.Bottom()

	descHeight := EstimateTextHeight(s.Detail.Description, BodyTextSize, inner)
	desc := newNode("description", KindText, Rect{X: SectionPadding, Y: y + SectionPadding, W: inner, H: descHeight})
	desc.Text = s.Detail.Description
	y += descHeight + 2*SectionPadding

	serving := renderServing(s.Servings, inner, y+SectionGap)
	y = serving.Frame.Bottom() + SectionGap

	cta := newNode("shopping_list", KindButton, Rect{X: SectionPadding, Y: y + SectionPadding, W: inner, H: CTAButtonHeight})
	cta.Text = "Add to shopping list"
	y += CTAButtonHeight + 2*SectionPadding

	foodsHeader := renderSectionHeader("foods", "Similar Foods", "You may like these...", "Show more", inner, y)
	y = foodsHeader.Frame.Bottom() + SectionGap

	carousel := renderFoods(s.Foods, s.FoodsOffset, w, y)
	y = carousel.Frame.Bottom()

	recipesHeader := renderSectionHeader("recipes", "Similar Recipes", "You can also read these...", "See All", inner, y)
	y = recipesHeader.Frame.Bottom() + SectionGap

	recipes := renderRecipes(s.Recipes, inner, y+SectionGap)
	y = recipes.Frame.Bottom() + SectionGap

	content.Frame.H = y
	return content.add(info, desc, serving, cta, foodsHeader, carousel, recipesHeader, recipes)
}

func renderInfoRow(stats []model.QuickStat, width, y float32) *Node {
	row := newNode("info", KindRow, Rect{Y: y, W: width, H: SectionPadding + InfoIconSize + InfoLabelHeight})
	if len(stats) == 0 {
		return row
	}

	// Evenly spaced columns
	col := width / float32(len(stats))
	for i, stat := range stats {
		x := col * float32(i)

		icon := newNode(fmt.Sprintf("info.%d.icon", i), KindImage, Rect{X: x + (col-InfoIconSize)/2, Y: SectionPadding, W: InfoIconSize, H: InfoIconSize})
		icon.Image = stat.Icon

		labelWidth := EstimateTextWidth(stat.Label, BodyTextSize)
		label := newNode(fmt.Sprintf("info.%d.label", i), KindText, Rect{X: x + (col-labelWidth)/2, Y: SectionPadding + InfoIconSize, W: labelWidth, H: InfoLabelHeight})
		label.Text = stat.Label

		row.add(icon, label)
	}
	return row
}

func renderServing(servings int, width, y float32) *Node {
	row := newNode("serving", KindRow, Rect{X: SectionPadding, Y: y, W: width, H: ServingRowHeight})

	count := strconv.Itoa(servings)
	countWidth := EstimateTextWidth(count, BodyTextSize) + 2*SectionPadding
	buttonY := (ServingRowHeight - ControlSize) / 2

	plusX := width - SectionPadding - ControlSize
	countX := plusX - countWidth
	minusX := countX - ControlSize

	label := newNode("serving.label", KindText, Rect{X: SectionPadding, W: minusX - SectionPadding, H: ServingRowHeight})
	label.Text = "Serving"

	minus := newNode("serving.decrement", KindIconButton, Rect{X: minusX, Y: buttonY, W: ControlSize, H: ControlSize})
	minus.Image = model.AssetIconMinus

	value := newNode("serving.count", KindText, Rect{X: countX, W: countWidth, H: ServingRowHeight})
	value.Text = count

	plus := newNode("serving.increment", KindIconButton, Rect{X: plusX, Y: buttonY, W: ControlSize, H: ControlSize})
	plus.Image = model.AssetIconPlus

	return row.add(label, minus, value, plus)
}

func renderSectionHeader(id, title, subtitle, action string, width, y float32) *Node {
	section := newNode(id+".header", KindRow, Rect{X: SectionPadding, Y: y + SectionGap, W: width, H: SectionHeaderHeight})

	half := SectionHeaderHeight / 2
	t := newNode(id+".title", KindText, Rect{W: width - SectionActionWidth, H: half})
	t.Text = title
	sub := newNode(id+".subtitle", KindText, Rect{Y: half, W: width - SectionActionWidth, H: half})
	sub.Text = subtitle
	btn := newNode(id+".action", KindButton, Rect{X: width - SectionActionWidth, W: SectionActionWidth, H: SectionHeaderHeight})
	btn.Text = action
	btn.Image = model.AssetIconArrowRight

	return section.add(t, sub, btn)
}

func renderFoods(foods []model.FoodItem, offset, width, y float32) *Node {
	carousel := newNode("foods.carousel", KindCarousel, Rect{Y: y, W: width, H: FoodCardHeight + 2*SectionGap})
	f := ComputeFoodCardFrames()

	for i, food := range foods {
		x := SectionPadding + float32(i)*FoodCardWidth - offset
		id := fmt.Sprintf("foods.%d", i)
		card := newNode(id, KindCard, Rect{X: x, Y: SectionGap, W: FoodCardWidth, H: FoodCardHeight})

		image := newNode(id+".image", KindImage, f.Image)
		image.Image = food.Image
		name := newNode(id+".name", KindText, f.Name)
		name.Text = food.Name
		desc := newNode(id+".description", KindText, f.Description)
		desc.Text = food.Description
		price := newNode(id+".price", KindText, f.Price)
		price.Text = food.Price
		add := newNode(id+".add", KindIconButton, f.Add)
		add.Image = model.AssetIconPlus

		carousel.add(card.add(newNode(id+".body", KindRow, f.Body), image, name, desc, price, add))
	}
	return carousel
}

func renderRecipes(recipes []model.RecipeItem, width, y float32) *Node {
	list := newNode("recipes.list", KindRow, Rect{X: SectionPadding, Y: y, W: width, H: float32(len(recipes)) * RecipeRowHeight})
	f := ComputeRecipeRowFrames(width)

	for i, recipe := range recipes {
		id := fmt.Sprintf("recipes.%d", i)
		frame := f.Row
		frame.Y = float32(i) * RecipeRowHeight
		row := newNode(id, KindRow, frame)

		image := newNode(id+".image", KindImage, f.Image)
		image.Image = recipe.Image
		name := newNode(id+".name", KindText, f.Name)
		name.Text = recipe.Name
		category := newNode(id+".category", KindText, f.Category)
		category.Text = recipe.Category
		experience := newNode(id+".experience", KindText, f.Experience)
		experience.Text = recipe.Experience
		chevron := newNode(id+".open", KindIconButton, f.Chevron)
		chevron.Image = model.AssetIconArrowRight

		list.add(row.add(image, name, category, newNode(id+".badge", KindChip, f.Badge), experience, chevron))
	}
	return list
}
