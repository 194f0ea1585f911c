// Package action carries taps on the recipe screen to whoever hosts it.
// The screen itself gives no meaning to these actions; navigation, the
// shopping list and favorites live outside of it.
package action

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which control was tapped
type Kind string

const (
	KindBack              Kind = "back"
	KindFavorite          Kind = "favorite"
	KindAddToShoppingList Kind = "add_to_shopping_list"
	KindShowMoreFoods     Kind = "show_more_foods"
	KindSeeAllRecipes     Kind = "see_all_recipes"
	KindOpenFood          Kind = "open_food"
	KindAddFood           Kind = "add_food"
	KindOpenRecipe        Kind = "open_recipe"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// Dispatcher receives screen actions. Target names the item for per-item
// actions and is empty otherwise.
type Dispatcher interface {
	Dispatch(kind Kind, target string)
}

// Nop discards every action
type Nop struct{}

// Dispatch implements Dispatcher
func (Nop) Dispatch(Kind, string) {}

// Event is one recorded action
type Event struct {
	ID     uuid.UUID
	Kind   Kind
	Target string
	At     time.Time
}

// DefaultHistorySize bounds how many events a Recorder keeps
const DefaultHistorySize = 64

// Recorder logs actions and keeps the most recent ones. It is safe to read
// the history from another goroutine while the UI dispatches.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	limit   int
	next    Dispatcher
	logger  *slog.Logger
	nowFunc func() time.Time
}

// NewRecorder creates a recorder forwarding to next, which may be nil
func NewRecorder(limit int, next Dispatcher, logger *slog.Logger) *Recorder {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		limit:   limit,
		next:    next,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Dispatch implements Dispatcher
func (r *Recorder) Dispatch(kind Kind, target string) {
	ev := Event{
		ID:     uuid.New(),
		Kind:   kind,
		Target: target,
		At:     r.nowFunc(),
	}

	r.mu.Lock()
	r.events = append(r.events, ev)
	if len(r.events) > r.limit {
		r.events = r.events[len(r.events)-r.limit:]
	}
	r.mu.Unlock()

	r.logger.Debug("Action dispatched", "id", ev.ID, "kind", kind, "target", target)

	if r.next != nil {
		r.next.Dispatch(kind, target)
	}
}

// Events returns a copy of the recorded events, oldest first
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the most recent event
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// Func adapts a plain function to Dispatcher
type Func func(kind Kind, target string)

// Dispatch implements Dispatcher
func (f Func) Dispatch(kind Kind, target string) {
	f(kind, target)
}
