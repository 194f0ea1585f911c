package action

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecorder_Dispatch(t *testing.T) {
	var forwarded []Kind
	next := Func(func(kind Kind, _ string) { forwarded = append(forwarded, kind) })

	r := NewRecorder(0, next, quietLogger())
	r.Dispatch(KindAddFood, "Hot Dog")
	r.Dispatch(KindBack, "")

	events := r.Events()
	require.Len(t, events, 2)
	assert.Equal(t, KindAddFood, events[0].Kind)
	assert.Equal(t, "Hot Dog", events[0].Target)
	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	assert.Equal(t, []Kind{KindAddFood, KindBack}, forwarded)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, KindBack, last.Kind)
}

func TestRecorder_Bounded(t *testing.T) {
	r := NewRecorder(3, nil, quietLogger())
	for i := 0; i < 10; i++ {
		r.Dispatch(KindOpenRecipe, fmt.Sprintf("recipe-%d", i))
	}

	events := r.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "recipe-7", events[0].Target)
	assert.Equal(t, "recipe-9", events[2].Target)
}

func TestRecorder_Empty(t *testing.T) {
	r := NewRecorder(1, nil, nil)
	_, ok := r.Last()
	assert.False(t, ok)
	assert.Empty(t, r.Events())
}

func TestRecorder_ConcurrentReads(t *testing.T) {
	r := NewRecorder(16, nil, quietLogger())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			r.Dispatch(KindFavorite, "")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = r.Events()
		}
	}()
	wg.Wait()

	assert.Len(t, r.Events(), 16)
}

func TestNop(t *testing.T) {
	var d Dispatcher = Nop{}
	d.Dispatch(KindSeeAllRecipes, "")
}
