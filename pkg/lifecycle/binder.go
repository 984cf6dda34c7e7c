// Package lifecycle connects environment events to state refreshes.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Event is something that happened in the environment.
type Event interface {
	event()
}

// Highlighted reports that the highlighted tabs of a window changed.
type Highlighted struct {
	WindowID int
	TabIDs   []int
}

// Focused reports that the view regained focus.
type Focused struct{}

// Changed reports that the backing store was modified outside this context.
type Changed struct{}

func (Highlighted) event() {}
func (Focused) event()     {}
func (Changed) event()     {}

// Intents are the state operations the binder drives.
type Intents interface {
	PruneEmptyTabGroups(ctx context.Context) error
	Hydrate(ctx context.Context) error
}

// TabIdentity identifies the tab hosting this context.
type TabIdentity interface {
	CurrentTabID(ctx context.Context) (int, error)
}

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the logger used to report failed refreshes.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Binder) {
		b.log = l
	}
}

// Binder refreshes state at startup and in response to events for its own
// context.
type Binder struct {
	intents Intents
	tabID   int
	log     zerolog.Logger
}

// Bind captures the id of the tab hosting this context. Highlight events for
// any other tab are ignored.
func Bind(ctx context.Context, intents Intents, id TabIdentity, opts ...Option) (*Binder, error) {
	if intents == nil {
		return nil, fmt.Errorf("lifecycle: intents required")
	}
	if id == nil {
		return nil, fmt.Errorf("lifecycle: tab identity required")
	}
	tabID, err := id.CurrentTabID(ctx)
	if err != nil {
		return nil, err
	}
	b := &Binder{intents: intents, tabID: tabID, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b, nil
}

// TabID returns the tab id captured at bind time.
func (b *Binder) TabID() int {
	return b.tabID
}

// Start prunes empty groups and only then hydrates, so groups about to be
// deleted are never shown.
func (b *Binder) Start(ctx context.Context) error {
	if err := b.intents.PruneEmptyTabGroups(ctx); err != nil {
		return err
	}
	return b.intents.Hydrate(ctx)
}

// Handle reacts to one event.
func (b *Binder) Handle(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case Highlighted:
		if len(e.TabIDs) == 0 || e.TabIDs[0] != b.tabID {
			return nil
		}
		return b.intents.Hydrate(ctx)
	case Focused, Changed:
		return b.intents.Hydrate(ctx)
	default:
		return fmt.Errorf("lifecycle: unknown event %T", ev)
	}
}

// Run handles events until the channel closes or ctx is done. A failed
// refresh is logged and does not stop the loop.
func (b *Binder) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := b.Handle(ctx, ev); err != nil {
				b.log.Error().Err(err).Str("event", fmt.Sprintf("%T", ev)).Msg("refresh failed")
			}
		}
	}
}
