package ui

import (
	"io"
	"log/slog"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/cooking/internal/action"
	"github.com/ytget/cooking/internal/assets"
	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/logging"
)

func newTestScreen(t *testing.T) (*CookingScreen, *action.Recorder) {
	t.Helper()
	test.NewApp()

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	cfg := config.Default()
	cfg.Layout.TopInset = 44

	rec := action.NewRecorder(action.DefaultHistorySize, nil, logging.New(io.Discard, slog.LevelDebug))
	s := NewCookingScreen(w, cfg, assets.NewEmbedded(), rec)
	w.Resize(fyne.NewSize(400, 800))
	return s, rec
}

func TestCookingScreen_InitialState(t *testing.T) {
	s, _ := newTestScreen(t)

	st := s.State()
	assert.Equal(t, float32(300), st.MaxOffset)
	assert.Zero(t, st.Progress)

	p := s.Header().Params()
	assert.Equal(t, float32(1), p.ImageOpacity)
	assert.Equal(t, float32(400), p.Height)
	assert.False(t, p.Elevated)
	assert.Equal(t, 6, s.Servings())
}

func TestCookingScreen_ScrollUpdatesHeader(t *testing.T) {
	s, _ := newTestScreen(t)

	st := s.ScrollTo(250)
	require.Equal(t, float32(250), st.RawOffset)

	p := s.Header().Params()
	assert.InDelta(t, 0.5, p.ImageOpacity, 1e-4)
	assert.Equal(t, float32(-250), p.TranslateY)
	assert.Equal(t, float32(-250), s.Header().Position().Y)

	s.ScrollTo(300)
	p = s.Header().Params()
	assert.Zero(t, p.ImageOpacity)
	assert.True(t, p.Elevated)

	// The control row never moves
	assert.Equal(t, float32(44+(56-38)/2), s.BackButton().Position().Y)

	s.ScrollTo(0)
	assert.Equal(t, float32(1), s.Header().Params().ImageOpacity)
	assert.False(t, s.Header().Params().Elevated)
}

func TestCookingScreen_ControlsDispatch(t *testing.T) {
	s, rec := newTestScreen(t)

	test.Tap(s.BackButton())
	test.Tap(s.FavoriteButton())

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, action.KindBack, events[0].Kind)
	assert.Equal(t, action.KindFavorite, events[1].Kind)
}

func TestCookingScreen_Snapshot(t *testing.T) {
	s, _ := newTestScreen(t)

	test.Tap(s.Calculator().IncrementButton())
	s.ScrollTo(300)

	tree := s.Snapshot()
	require.NotNil(t, tree)

	count := tree.Find("serving.count")
	require.NotNil(t, count)
	assert.Equal(t, "7", count.Text)

	image := tree.Find("header.image")
	require.NotNil(t, image)
	assert.Zero(t, image.Opacity)
	assert.NotNil(t, tree.Find("header.shadow"))
}
