package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/cooking/internal/parallax"
)

func TestRender_Idempotent(t *testing.T) {
	for _, raw := range []float32{0, 150, 250, 344, 1200} {
		s := DefaultState(390, 844).WithScroll(raw)
		assert.Equal(t, Render(s), Render(s), "raw=%v", raw)
	}
}

func TestRender_Expanded(t *testing.T) {
	tree := Render(DefaultState(390, 844))

	header := tree.Find("header")
	require.NotNil(t, header)
	assert.Equal(t, Rect{W: 390, H: 400}, header.Frame)
	assert.Equal(t, float32(0), header.Elevation)
	assert.Nil(t, tree.Find("header.shadow"))

	image := tree.Find("header.image")
	require.NotNil(t, image)
	assert.Equal(t, float32(1), image.Opacity)
	assert.Equal(t, float32(344), image.Frame.H)

	title := tree.Find("header.title")
	require.NotNil(t, title)
	assert.Equal(t, "StrawBerry cake", title.Text)
	assert.Equal(t, float32(1), title.Scale)
	assert.Equal(t, float32(16), title.Frame.X)
}

func TestRender_Collapsed(t *testing.T) {
	s := DefaultState(390, 844)
	s = s.WithScroll(s.Metrics.MaxOffset())
	tree := Render(s)

	header := tree.Find("header")
	assert.Equal(t, float32(-344), header.Frame.Y)
	assert.Equal(t, float32(4), header.Elevation)

	shadow := tree.Find("header.shadow")
	require.NotNil(t, shadow)
	assert.Equal(t, float32(400), shadow.Frame.Y)

	assert.Equal(t, float32(0), tree.Find("header.image").Opacity)
	assert.Equal(t, float32(0), tree.Find("header.category").Opacity)
	assert.Equal(t, float32(0.75), tree.Find("header.title").Scale)
	assert.Equal(t, float32(44), tree.Find("header.title").Frame.X)
}

func TestRender_GradientIsFixed(t *testing.T) {
	s := DefaultState(390, 844)
	expanded := Render(s).Find("header.gradient")
	collapsed := Render(s.WithScroll(400)).Find("header.gradient")

	require.NotNil(t, expanded)
	assert.Equal(t, expanded, collapsed)
	assert.InDelta(t, 344*0.4, expanded.Frame.Y, 1e-3)
	assert.InDelta(t, 344, expanded.Frame.Bottom(), 1e-3)
	assert.Equal(t, float32(1), expanded.Opacity)
}

func TestRender_ControlsDoNotMove(t *testing.T) {
	s := DefaultState(390, 844)
	s.Metrics = s.Metrics.WithTopInset(24)

	var frames []Rect
	for _, raw := range []float32{0, 200, 320, 900} {
		tree := Render(s.WithScroll(raw))
		row := tree.Find("controls")
		require.NotNil(t, row)
		assert.Equal(t, float32(24), row.Frame.Y)
		frames = append(frames, tree.Find("controls.back").Frame, tree.Find("controls.favorite").Frame)
	}
	for i := 2; i < len(frames); i++ {
		assert.Equal(t, frames[i%2], frames[i])
	}

	fav := frames[1]
	assert.Equal(t, float32(390-16-38), fav.X)
}

func TestRender_ContentOrder(t *testing.T) {
	s := DefaultState(390, 844)
	content := Render(s).Find("content")
	require.NotNil(t, content)

	ids := make([]string, 0, len(content.Children))
	for _, c := range content.Children {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{
		"info", "description", "serving", "shopping_list",
		"foods.header", "foods.carousel", "recipes.header", "recipes.list",
	}, ids)

	// Content starts below the fully expanded header and never overlaps
	assert.Equal(t, s.Metrics.ExpandedHeight, content.Children[0].Frame.Y)
	for i := 1; i < len(content.Children); i++ {
		assert.GreaterOrEqual(t, content.Children[i].Frame.Y, content.Children[i-1].Frame.Bottom(), ids[i])
	}
	assert.GreaterOrEqual(t, content.Frame.H, content.Children[len(content.Children)-1].Frame.Bottom())
}

func TestRender_ContentScrolls(t *testing.T) {
	s := DefaultState(390, 844)
	assert.Equal(t, float32(-700), Render(s.WithScroll(700)).Find("content").Frame.Y)
}

func TestRender_Servings(t *testing.T) {
	s := DefaultState(390, 844)
	assert.Equal(t, "6", Render(s).Find("serving.count").Text)

	s.Servings = -1
	assert.Equal(t, "-1", Render(s).Find("serving.count").Text)
}

func TestRender_Carousels(t *testing.T) {
	s := DefaultState(390, 844)
	tree := Render(s)

	carousel := tree.Find("foods.carousel")
	require.Len(t, carousel.Children, len(s.Foods))
	assert.Equal(t, "Hot Dog", tree.Find("foods.0.name").Text)
	assert.Equal(t, "26$", tree.Find("foods.3.price").Text)
	assert.Equal(t, float32(16+170), tree.Find("foods.1").Frame.X)

	s.FoodsOffset = 100
	assert.Equal(t, float32(16+170-100), Render(s).Find("foods.1").Frame.X)

	list := tree.Find("recipes.list")
	require.Len(t, list.Children, len(s.Recipes))
	assert.Equal(t, "+2 years Experience", tree.Find("recipes.1.experience").Text)
	assert.Equal(t, float32(2*RecipeRowHeight), tree.Find("recipes.2").Frame.Y)
}

func TestRender_DegenerateMetrics(t *testing.T) {
	s := DefaultState(390, 844)
	s.Metrics = parallax.Metrics{ExpandedHeight: 56, CollapsedHeight: 56}
	tree := Render(s.WithScroll(300))

	assert.Equal(t, float32(1), tree.Find("header.image").Opacity)
	assert.Equal(t, float32(0), tree.Find("header").Frame.Y)
}

func TestRender_JSON(t *testing.T) {
	data, err := json.Marshal(Render(DefaultState(360, 640)))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"header.title"`)
}

func TestWalk(t *testing.T) {
	tree := Render(DefaultState(390, 844))

	count := 0
	tree.Walk(func(n *Node) bool {
		count++
		return n.Kind != KindCarousel && n.Kind != KindRow
	})
	assert.Greater(t, count, 5)

	assert.Nil(t, (*Node)(nil).Find("x"))
}

func TestEstimateTextHeight(t *testing.T) {
	one := EstimateTextHeight("short", BodyTextSize, 300)
	assert.InDelta(t, BodyTextSize*1.4, one, 1e-4)

	long := EstimateTextHeight(DefaultState(0, 0).Detail.Description, BodyTextSize, 300)
	assert.Greater(t, long, one)

	assert.Equal(t, one, EstimateTextHeight("", BodyTextSize, 300))
}

func TestItemFrames(t *testing.T) {
	food := ComputeFoodCardFrames()
	assert.LessOrEqual(t, food.Add.Bottom(), FoodCardHeight)
	assert.LessOrEqual(t, food.Price.Bottom(), FoodCardHeight)
	assert.Less(t, food.Body.Y, food.Image.Bottom(), "image overlaps the body")
	assert.InDelta(t, FoodCardHeight-FoodCardPadding, food.Body.Bottom(), 1e-3)

	recipe := ComputeRecipeRowFrames(358)
	assert.Equal(t, RecipeRowHeight-RecipeRowGap, recipe.Row.H)
	assert.Equal(t, recipe.Image.W, recipe.Image.H)
	assert.LessOrEqual(t, recipe.Image.H, recipe.Row.H)
	assert.LessOrEqual(t, recipe.Experience.Bottom(), recipe.Row.H)
}
