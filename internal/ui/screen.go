package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/cooking/internal/action"
	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/layout"
	"github.com/ytget/cooking/internal/model"
	"github.com/ytget/cooking/internal/parallax"
)

// CookingScreen is the recipe detail screen: a scrolling content list under
// a collapsing parallax header, with the back and favorite controls pinned
// on top.
type CookingScreen struct {
	window     fyne.Window
	cfg        config.Config
	provider   assets.Provider
	dispatcher action.Dispatcher

	detail  model.RecipeDetail
	foods   []model.FoodItem
	recipes []model.RecipeItem

	device   *DeviceInfo
	observer *parallax.ScrollObserver
	style    parallax.HeaderStyle
	servings *model.ServingCount

	// UI components
	header      *ParallaxHeader
	back        *CircularButton
	favorite    *CircularButton
	calculator  *ServingCalculator
	scroll      *container.Scroll
	foodsScroll *container.Scroll
	root        *fyne.Container
}

// NewCookingScreen builds the screen for the default recipe and installs it
// as the window content.
func NewCookingScreen(window fyne.Window, cfg config.Config, provider assets.Provider, dispatcher action.Dispatcher) *CookingScreen {
	if dispatcher == nil {
		dispatcher = action.Nop{}
	}

	s := &CookingScreen{
		window:     window,
		cfg:        cfg,
		provider:   provider,
		dispatcher: dispatcher,
		detail:     model.DefaultDetail(),
		foods:      model.SimilarFoods(),
		recipes:    model.SimilarRecipes(),
		device:     NewDeviceInfo(window.Canvas()),
		style:      cfg.HeaderStyle(),
		servings:   model.NewServingCount(cfg.Serving.Initial),
	}
	s.observer = parallax.NewScrollObserver(cfg.Metrics(s.device.TopInset()))

	s.setupUI()
	s.observer.OnChange(s.onScrollChanged)

	window.SetTitle(s.detail.Title)
	window.SetContent(s.root)

	slog.Info("cooking screen ready",
		"recipe", s.detail.Title,
		"max_offset", s.observer.Metrics().MaxOffset(),
		"servings", s.servings.Value(),
		"mobile", s.device.IsMobileDevice(),
		"landscape", s.device.IsLandscape())
	return s
}

// setupUI creates the UI components
func (s *CookingScreen) setupUI() {
	palette := s.cfg.Palette
	params := s.headerParams(s.observer.State())

	s.header = NewParallaxHeader(s.detail, s.provider, palette, params)

	s.back = NewCircularButton(assets.Resolve(s.provider, model.AssetIconArrowBack), true, func() {
		s.dispatch(action.KindBack, "")
	})
	s.favorite = NewCircularButton(assets.Resolve(s.provider, model.AssetIconFavorite), true, func() {
		s.dispatch(action.KindFavorite, "")
	})

	s.calculator = NewServingCalculator(s.servings, s.provider, palette)

	s.scroll = container.NewVScroll(s.createContent())
	s.scroll.OnScrolled = func(pos fyne.Position) {
		s.observer.Observe(pos.Y)
	}

	s.root = container.New(&screenLayout{screen: s}, s.scroll, s.header, s.back, s.favorite)
}

// createContent builds the content list. It starts with a transparent
// spacer as tall as the expanded header.
func (s *CookingScreen) createContent() fyne.CanvasObject {
	palette := s.cfg.Palette
	arrow := assets.Resolve(s.provider, model.AssetIconArrowRight)

	spacer := canvas.NewRectangle(TransparentColor)
	spacer.SetMinSize(fyne.NewSize(0, s.cfg.Layout.ExpandedHeight))

	cta := newShoppingListButton(func() {
		s.dispatch(action.KindAddToShoppingList, s.detail.Title)
	})

	return container.NewVBox(
		spacer,
		newInfoRow(s.detail.Stats, s.provider, palette),
		newDescription(s.detail.Description),
		container.NewPadded(s.calculator),
		container.NewPadded(cta),
		newSectionHeader(TextSimilarFoods, TextSimilarFoodsSub, TextShowMore, arrow, palette, func() {
			s.dispatch(action.KindShowMoreFoods, "")
		}),
		s.createFoodCarousel(),
		newSectionHeader(TextSimilarRecipes, TextSimilarRecipesSub, TextSeeAll, arrow, palette, func() {
			s.dispatch(action.KindSeeAllRecipes, "")
		}),
		s.createRecipeList(),
	)
}

func (s *CookingScreen) createFoodCarousel() fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(s.foods))
	for _, food := range s.foods {
		card := NewFoodCard(food, s.provider, s.cfg.Palette)
		card.SetCallbacks(
			func(f model.FoodItem) { s.dispatch(action.KindOpenFood, f.Name) },
			func(f model.FoodItem) { s.dispatch(action.KindAddFood, f.Name) },
		)
		cards = append(cards, card)
	}
	s.foodsScroll = container.NewHScroll(container.NewHBox(cards...))
	return s.foodsScroll
}

func (s *CookingScreen) createRecipeList() fyne.CanvasObject {
	rows := make([]fyne.CanvasObject, 0, len(s.recipes))
	for _, recipe := range s.recipes {
		row := NewRecipeRow(recipe, s.provider, s.cfg.Palette)
		row.OnTapped = func(r model.RecipeItem) {
			s.dispatch(action.KindOpenRecipe, r.Name)
		}
		rows = append(rows, row)
	}
	return container.NewPadded(container.NewVBox(rows...))
}

func (s *CookingScreen) dispatch(kind action.Kind, target string) {
	slog.Debug("screen action", "kind", kind, "target", target)
	s.dispatcher.Dispatch(kind, target)
}

func (s *CookingScreen) headerParams(state parallax.State) parallax.HeaderParams {
	return parallax.ComputeHeader(state, s.observer.Metrics(), s.style)
}

// onScrollChanged moves and restyles the header for a new scroll state
func (s *CookingScreen) onScrollChanged(state parallax.State) {
	p := s.headerParams(state)
	if !s.header.Apply(p) {
		return
	}
	s.header.Move(fyne.NewPos(0, p.TranslateY))
	if state.Collapsed() {
		slog.Debug("header collapsed", "offset", state.RawOffset)
	}
}

// syncInsets picks up the status bar height once the canvas knows it
func (s *CookingScreen) syncInsets() {
	if s.cfg.HasFixedTopInset() {
		return
	}
	inset := s.device.TopInset()
	if inset == s.observer.Metrics().TopInset {
		return
	}
	slog.Debug("top inset changed", "inset", inset)
	s.observer.SetMetrics(s.observer.Metrics().WithTopInset(inset))
}

// ScrollTo scrolls the content list to a vertical offset
func (s *CookingScreen) ScrollTo(offset float32) parallax.State {
	s.scroll.Offset = fyne.NewPos(s.scroll.Offset.X, offset)
	s.scroll.Refresh()
	return s.observer.Observe(s.scroll.Offset.Y)
}

// State returns the current scroll state
func (s *CookingScreen) State() parallax.State {
	return s.observer.State()
}

// Header returns the parallax header widget
func (s *CookingScreen) Header() *ParallaxHeader {
	return s.header
}

// Calculator returns the serving calculator widget
func (s *CookingScreen) Calculator() *ServingCalculator {
	return s.calculator
}

// Servings returns the current serving count
func (s *CookingScreen) Servings() int {
	return s.servings.Value()
}

// BackButton returns the back control
func (s *CookingScreen) BackButton() *CircularButton {
	return s.back
}

// FavoriteButton returns the favorite control
func (s *CookingScreen) FavoriteButton() *CircularButton {
	return s.favorite
}

// Snapshot renders the current screen state as a layout tree
func (s *CookingScreen) Snapshot() *layout.Node {
	size := s.root.Size()
	return layout.Render(layout.State{
		Width:       size.Width,
		Height:      size.Height,
		Scroll:      s.observer.State(),
		FoodsOffset: s.foodsScroll.Offset.X,
		Servings:    s.servings.Value(),
		Metrics:     s.observer.Metrics(),
		Style:       s.style,
		Detail:      s.detail,
		Foods:       s.foods,
		Recipes:     s.recipes,
	})
}

// screenLayout stacks the content list, the header and the controls
type screenLayout struct {
	screen *CookingScreen
}

func (l *screenLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	s := l.screen
	s.syncInsets()

	p := s.header.Params()
	f := s.header.Frames(size.Width)

	s.scroll.Move(fyne.NewPos(0, 0))
	s.scroll.Resize(size)

	s.header.Move(fyne.NewPos(0, p.TranslateY))
	s.header.Resize(fyne.NewSize(size.Width, p.Height+layout.ShadowMaxHeight))

	place(s.back, f.Back)
	place(s.favorite, f.Favorite)
}

func (l *screenLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	p := l.screen.header.Params()
	return fyne.NewSize(layout.FoodCardWidth*2, p.Height)
}
