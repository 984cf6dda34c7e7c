// Package state owns the in-memory snapshot of saved tab groups and the
// intents that keep it in sync with the backing store.
//
// Every change to persisted data goes through an intent. Intents run one at a
// time; each calls the adapters in order and then commits its results to the
// snapshot in a single step, so readers never observe a partial update.
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/tidy/pkg/store"
	"tableflip.dev/tidy/pkg/tabgroup"
	"tableflip.dev/tidy/pkg/tabs"
	"tableflip.dev/tidy/pkg/version"
)

// ThemeKey is the preference key holding the UI theme.
const ThemeKey = "theme"

var (
	ErrNoBackingStore = errors.New("state: backing store required")
	ErrNoTabSource    = errors.New("state: tab source required")
	ErrNoPreferences  = errors.New("state: preferences required")
)

// Data holds the groups mirrored from the backing store.
type Data struct {
	TabGroups []tabgroup.TabGroup `json:"tabGroups"`
}

// Snapshot is the complete state shown to the user.
type Snapshot struct {
	Version      string `json:"version"`
	StateVersion string `json:"stateVersion"`
	Data         Data   `json:"data"`
	SearchQuery  string `json:"searchQuery"`
	Theme        string `json:"theme"`
}

func (s Snapshot) clone() Snapshot {
	s.Data.TabGroups = tabgroup.CloneList(s.Data.TabGroups)
	return s
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for intent tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithVersion overrides the running software version.
func WithVersion(v string) Option {
	return func(s *Store) {
		s.version = v
	}
}

// WithDefaultTheme sets the theme used when none was persisted.
func WithDefaultTheme(theme string) Option {
	return func(s *Store) {
		if theme != "" {
			s.defaultTheme = theme
		}
	}
}

// Store is the state controller for one extension context.
type Store struct {
	backing store.BackingStore
	tabs    tabs.Source
	prefs   store.Preferences

	log          zerolog.Logger
	version      string
	defaultTheme string

	// intent holds one token; an intent runs only while holding it.
	intent chan struct{}

	mu   sync.RWMutex
	snap Snapshot

	updates chan struct{}
}

// New builds a Store over the given adapters. The snapshot starts empty; call
// Hydrate to populate it.
func New(backing store.BackingStore, src tabs.Source, prefs store.Preferences, opts ...Option) (*Store, error) {
	if backing == nil {
		return nil, ErrNoBackingStore
	}
	if src == nil {
		return nil, ErrNoTabSource
	}
	if prefs == nil {
		return nil, ErrNoPreferences
	}
	s := &Store{
		backing:      backing,
		tabs:         src,
		prefs:        prefs,
		log:          zerolog.Nop(),
		version:      version.Version,
		defaultTheme: store.DefaultTheme,
		intent:       make(chan struct{}, 1),
		updates:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	stateVersion, err := StateVersionOf(s.version)
	if err != nil {
		return nil, err
	}
	s.snap = Snapshot{
		Version:      s.version,
		StateVersion: stateVersion,
		Data:         Data{TabGroups: []tabgroup.TabGroup{}},
	}
	return s, nil
}

// acquire waits for the intent token. It fails only when ctx ends first.
func (s *Store) acquire(ctx context.Context) (release func(), err error) {
	select {
	case s.intent <- struct{}{}:
		return func() { <-s.intent }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.clone()
}

// SortedAndFilteredTabGroups projects the current snapshot for display.
func (s *Store) SortedAndFilteredTabGroups() []tabgroup.TabGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Project(s.snap)
}

// Updates signals after every commit. Signals coalesce: a reader that falls
// behind sees one pending signal, then reads the latest Snapshot.
func (s *Store) Updates() <-chan struct{} {
	return s.updates
}

func (s *Store) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// SaveTabGroup saves the focused window's tabs as a new group. Tabs the tab
// source always excludes are dropped first, then those keep rejects. When no
// tab is left nothing is created and an empty list is returned. The snapshot
// is not refreshed; call Hydrate to see the new group.
func (s *Store) SaveTabGroup(ctx context.Context, keep tabs.Predicate) ([]tabs.Tab, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	live, err := s.tabs.CurrentWindowTabs(ctx)
	if err != nil {
		return nil, err
	}
	kept := tabs.Filter(live, s.tabs.ShouldExclude, keep)
	if len(kept) == 0 {
		s.log.Debug().Str("intent", "save").Int("open", len(live)).Msg("no tabs left to save")
		return kept, nil
	}

	ref, err := s.backing.CreateGroup(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range kept {
		if err := s.backing.CreateEntry(ctx, ref, t.Title, t.URL); err != nil {
			return nil, err
		}
	}
	s.log.Debug().Str("intent", "save").Int64("dateAdded", ref.DateAdded).Int("tabs", len(kept)).Msg("saved tab group")
	return kept, nil
}

// DeleteTabGroup removes the group identified by dateAdded and refreshes the
// snapshot.
func (s *Store) DeleteTabGroup(ctx context.Context, dateAdded int64) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.backing.RemoveGroup(ctx, dateAdded); err != nil {
		return err
	}
	s.log.Debug().Str("intent", "delete_group").Int64("dateAdded", dateAdded).Msg("removed tab group")
	return s.hydrate(ctx)
}

// DeleteTab removes every entry with url from group and refreshes the
// snapshot.
func (s *Store) DeleteTab(ctx context.Context, group tabgroup.TabGroup, url string) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.backing.RemoveEntry(ctx, group.Ref(), url); err != nil {
		return err
	}
	s.log.Debug().Str("intent", "delete_tab").Int64("dateAdded", group.DateAdded).Str("url", url).Msg("removed tab")
	return s.hydrate(ctx)
}

// ImportData replaces the backing store's contents with raw and refreshes the
// snapshot. raw is validated by the backing store.
func (s *Store) ImportData(ctx context.Context, raw []byte) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.backing.BulkReplace(ctx, raw); err != nil {
		return err
	}
	s.log.Debug().Str("intent", "import").Int("bytes", len(raw)).Msg("imported tab groups")
	return s.hydrate(ctx)
}

// Hydrate refreshes the tab groups and theme from the adapters.
func (s *Store) Hydrate(ctx context.Context) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return s.hydrate(ctx)
}

// PruneEmptyTabGroups removes every group without tabs from the backing
// store. The snapshot is not refreshed.
func (s *Store) PruneEmptyTabGroups(ctx context.Context) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.backing.PruneEmpty(ctx); err != nil {
		return err
	}
	s.log.Debug().Str("intent", "prune").Msg("pruned empty tab groups")
	return nil
}

// SetTheme persists theme and then commits it, so the persisted and shown
// themes never diverge. On failure the snapshot keeps its previous theme.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.prefs.Set(ctx, ThemeKey, theme); err != nil {
		return err
	}
	s.mu.Lock()
	s.snap.Theme = theme
	s.mu.Unlock()
	s.notify()
	return nil
}

// SetSearchQuery sets the filter used by SortedAndFilteredTabGroups.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.snap.SearchQuery = q
	s.mu.Unlock()
	s.notify()
}

// hydrate requires the intent token.
func (s *Store) hydrate(ctx context.Context) error {
	var (
		groups    []tabgroup.TabGroup
		theme     string
		persisted bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = s.backing.ListGroups(gctx)
		return err
	})
	g.Go(func() error {
		v, ok, err := s.prefs.Get(gctx, ThemeKey)
		if err != nil {
			return err
		}
		theme, persisted = v, ok && v != ""
		if !persisted {
			theme = s.defaultTheme
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !persisted {
		if err := s.prefs.Set(ctx, ThemeKey, theme); err != nil {
			return err
		}
	}
	if groups == nil {
		groups = []tabgroup.TabGroup{}
	}

	s.mu.Lock()
	s.snap.Data = Data{TabGroups: groups}
	s.snap.Theme = theme
	s.mu.Unlock()
	s.notify()

	s.log.Debug().Str("intent", "hydrate").Int("groups", len(groups)).Str("theme", theme).Msg("hydrated state")
	return nil
}
