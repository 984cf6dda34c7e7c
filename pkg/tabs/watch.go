package tabs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Highlight lists the active tabs of one window, in display order.
type Highlight struct {
	WindowID int
	TabIDs   []int
}

// Highlighter streams highlight changes of the focused window.
type Highlighter interface {
	Highlights(ctx context.Context) (<-chan Highlight, error)
}

var _ Highlighter = (*FileSource)(nil)

// Highlighted reads the active tabs of the focused window.
func (f *FileSource) Highlighted(ctx context.Context) (Highlight, error) {
	if err := ctx.Err(); err != nil {
		return Highlight{}, err
	}
	s, err := f.load()
	if err != nil {
		return Highlight{}, err
	}
	for _, w := range s.Windows {
		if !w.Focused {
			continue
		}
		active := make([]Tab, 0, 1)
		for _, t := range w.Tabs {
			if t.Active {
				active = append(active, t)
			}
		}
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].Index < active[j].Index
		})
		h := Highlight{WindowID: w.ID, TabIDs: make([]int, len(active))}
		for i, t := range active {
			h.TabIDs[i] = t.ID
		}
		return h, nil
	}
	return Highlight{}, ErrNoFocusedWindow
}

// settle lets a writer finish the snapshot before it is read back.
const settle = 50 * time.Millisecond

// Highlights emits the focused window's highlight each time the snapshot file
// is rewritten. The channel is closed once ctx is done or the watcher fails.
// Unreadable snapshots are skipped.
func (f *FileSource) Highlights(ctx context.Context) (<-chan Highlight, error) {
	if f.Path == "" {
		return nil, errors.New("tabs: snapshot path unknown")
	}
	path := filepath.Clean(f.Path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("tabs: ensure %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tabs: create watcher: %w", err)
	}
	// The directory, not the file: writers replace the file by rename.
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("tabs: watch %s: %w", dir, err)
	}

	out := make(chan Highlight, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != path || !evt.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(settle)
				fire = timer.C
			case <-fire:
				timer, fire = nil, nil
				h, err := f.Highlighted(ctx)
				if err != nil {
					continue
				}
				select {
				case out <- h:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
