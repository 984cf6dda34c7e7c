// Package watch keeps a live listing of saved groups on screen.
package watch

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/tidy/pkg/lifecycle"
	"tableflip.dev/tidy/pkg/runner/list"
	"tableflip.dev/tidy/pkg/state"
	"tableflip.dev/tidy/pkg/store"
	"tableflip.dev/tidy/pkg/tabs"
)

// Watch reprints the projection after every commit. Storage changes made by
// any process refresh it, as does a focus signal (SIGUSR1 where supported).
// When Tabs can stream highlights, the bound tab becoming active in the
// focused window refreshes it too.
type Watch struct {
	State   *state.Store
	Watcher store.Watcher
	Tabs    tabs.Source
	Log     zerolog.Logger

	Query  string
	JSON   bool
	ShowID bool
	Out    io.Writer

	// Focus overrides the signal based focus notifications.
	Focus <-chan struct{}
}

func (w *Watch) Do(ctx context.Context) error {
	if w.State == nil || w.Watcher == nil || w.Tabs == nil {
		return errors.New("can not watch, missing state, store or tabs")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	binder, err := lifecycle.Bind(ctx, w.State, w.Tabs, lifecycle.WithLogger(w.Log))
	if err != nil {
		return err
	}
	w.Log.Debug().Int("tabId", binder.TabID()).Msg("bound to tab")

	changes, err := w.Watcher.Watch(ctx)
	if err != nil {
		return err
	}

	focus := w.Focus
	if focus == nil {
		var stop func()
		focus, stop = focusSignals()
		defer stop()
	}

	var highlights <-chan tabs.Highlight
	if h, ok := w.Tabs.(tabs.Highlighter); ok {
		if highlights, err = h.Highlights(ctx); err != nil {
			return err
		}
	}

	w.State.SetSearchQuery(w.Query)
	if err := binder.Start(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan lifecycle.Event)

	g.Go(func() error {
		defer close(events)
		for {
			var ev lifecycle.Event
			select {
			case <-gctx.Done():
				return nil
			case sev, ok := <-changes:
				if !ok {
					return nil
				}
				w.Log.Debug().Str("type", sev.Type.String()).Int64("dateAdded", sev.DateAdded).Msg("storage changed")
				ev = lifecycle.Changed{}
			case <-focus:
				ev = lifecycle.Focused{}
			case h, ok := <-highlights:
				if !ok {
					highlights = nil
					continue
				}
				w.Log.Debug().Int("windowId", h.WindowID).Ints("tabIds", h.TabIDs).Msg("tabs highlighted")
				ev = lifecycle.Highlighted{WindowID: h.WindowID, TabIDs: h.TabIDs}
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		return binder.Run(gctx, events)
	})

	g.Go(func() error {
		printer := &list.List{State: w.State, Query: w.Query, JSON: w.JSON, ShowID: w.ShowID, Out: w.Out}
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-w.State.Updates():
				printer.Print()
			}
		}
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func focusSignals() (<-chan struct{}, func()) {
	sigs := make(chan os.Signal, 1)
	out := make(chan struct{}, 1)
	done := make(chan struct{})
	if s := focusSignal(); s != nil {
		signal.Notify(sigs, s)
	}
	go func() {
		for {
			select {
			case <-done:
				return
			case <-sigs:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, func() {
		signal.Stop(sigs)
		close(done)
	}
}
