package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tidy/pkg/tabgroup"
)

const (
	groupsFolder = "tabgroups"
	prefsFolder  = "prefs"
)

// Option configures a Diskv store.
type Option func(*Diskv)

// WithStateVersion sets the major version accepted by BulkReplace and written
// by Export.
func WithStateVersion(v string) Option {
	return func(d *Diskv) {
		d.stateVersion = v
	}
}

// WithClock overrides the time source used for DateAdded.
func WithClock(now func() time.Time) Option {
	return func(d *Diskv) {
		if now != nil {
			d.now = now
		}
	}
}

// Diskv keeps one record per tab group, plus preferences, in a diskv tree.
type Diskv struct {
	d            *diskv.Diskv
	basePath     string
	stateVersion string
	now          func() time.Time

	mu sync.Mutex
}

var (
	_ BackingStore = (*Diskv)(nil)
	_ Exporter     = (*Diskv)(nil)
	_ Watcher      = (*Diskv)(nil)
)

// Load opens the diskv store rooted at the configured base path.
func Load(cfg Config, opts ...Option) (*Diskv, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return Open(cfg.BasePath(), opts...)
}

// Open opens the diskv store rooted at basePath.
func Open(basePath string, opts ...Option) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	s := &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           basePath + ".tmp",
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// Other processes write here; the cache would hide their changes.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// BasePath returns the root directory of the store.
func (s *Diskv) BasePath() string {
	return s.basePath
}

func (s *Diskv) CreateGroup(ctx context.Context) (tabgroup.GroupRef, error) {
	if err := ctx.Err(); err != nil {
		return tabgroup.GroupRef{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	dateAdded := s.now().UnixMilli()
	for s.d.Has(groupKey(dateAdded)) {
		dateAdded++
	}
	g := tabgroup.TabGroup{
		DateAdded: dateAdded,
		Title:     uuid.New().String(),
		Tabs:      []tabgroup.Tab{},
	}
	if err := s.writeGroup(g); err != nil {
		return tabgroup.GroupRef{}, err
	}
	return g.Ref(), nil
}

func (s *Diskv) CreateEntry(ctx context.Context, ref tabgroup.GroupRef, title, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ref.DateAdded <= 0 {
		return fmt.Errorf("%w: %d", ErrGroupNotFound, ref.DateAdded)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.readGroup(groupKey(ref.DateAdded))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %d", ErrGroupNotFound, ref.DateAdded)
		}
		return err
	}
	g.Tabs = append(g.Tabs, tabgroup.Tab{Title: title, URL: url})
	return s.writeGroup(g)
}

func (s *Diskv) RemoveGroup(ctx context.Context, dateAdded int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dateAdded <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.erase(groupKey(dateAdded))
}

func (s *Diskv) RemoveEntry(ctx context.Context, ref tabgroup.GroupRef, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ref.DateAdded <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.readGroup(groupKey(ref.DateAdded))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	kept := g.Tabs[:0]
	for _, t := range g.Tabs {
		if t.URL == url {
			continue
		}
		kept = append(kept, t)
	}
	g.Tabs = kept
	return s.writeGroup(g)
}

func (s *Diskv) ListGroups(ctx context.Context) ([]tabgroup.TabGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(ctx)
}

func (s *Diskv) listLocked(ctx context.Context) ([]tabgroup.TabGroup, error) {
	all := make([]tabgroup.TabGroup, 0)
	for key := range s.d.KeysPrefix(groupsFolder+"-", ctx.Done()) {
		g, err := s.readGroup(key)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("store: read %s: %w", key, err)
		}
		all = append(all, g)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DateAdded < all[j].DateAdded
	})
	return all, nil
}

func (s *Diskv) PruneEmpty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.listLocked(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if !g.Empty() {
			continue
		}
		if err := s.erase(groupKey(g.DateAdded)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Diskv) BulkReplace(ctx context.Context, raw []byte) error {
	p, err := tabgroup.DecodePayload(raw)
	if err != nil {
		return err
	}
	if p.StateVersion != "" && s.stateVersion != "" && p.StateVersion != s.stateVersion {
		return fmt.Errorf("%w: payload %q, running %q", ErrIncompatibleState, p.StateVersion, s.stateVersion)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.listLocked(ctx)
	if err != nil {
		return err
	}
	// Write before erasing so a failed write leaves the old groups readable.
	keep := make(map[int64]struct{}, len(p.TabGroups))
	for _, g := range p.TabGroups {
		if g.Title == "" {
			g.Title = uuid.New().String()
		}
		if err := s.writeGroup(g); err != nil {
			return fmt.Errorf("store: write group %d: %w", g.DateAdded, err)
		}
		keep[g.DateAdded] = struct{}{}
	}
	for _, g := range existing {
		if _, ok := keep[g.DateAdded]; ok {
			continue
		}
		if err := s.erase(groupKey(g.DateAdded)); err != nil {
			return err
		}
	}
	return nil
}

// Export returns every group as an import payload.
func (s *Diskv) Export(ctx context.Context) (tabgroup.Payload, error) {
	groups, err := s.ListGroups(ctx)
	if err != nil {
		return tabgroup.Payload{}, err
	}
	return tabgroup.Payload{StateVersion: s.stateVersion, TabGroups: groups}, nil
}

// Preferences returns the key/value view of the store.
func (s *Diskv) Preferences() *Prefs {
	return &Prefs{s: s}
}

func (s *Diskv) readGroup(key string) (tabgroup.TabGroup, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return tabgroup.TabGroup{}, err
	}
	var g tabgroup.TabGroup
	if err := json.Unmarshal(val, &g); err != nil {
		return tabgroup.TabGroup{}, err
	}
	if g.DateAdded == 0 {
		g.DateAdded, _ = dateAddedFromKey(key)
	}
	if g.Tabs == nil {
		g.Tabs = []tabgroup.Tab{}
	}
	return g, nil
}

func (s *Diskv) writeGroup(g tabgroup.TabGroup) error {
	if g.Tabs == nil {
		g.Tabs = []tabgroup.Tab{}
	}
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return s.d.Write(groupKey(g.DateAdded), data)
}

func (s *Diskv) erase(key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// groupKey makes `tabgroups-<dateAdded>`.
func groupKey(dateAdded int64) string {
	return fmt.Sprintf("%s-%d", groupsFolder, dateAdded)
}

func dateAddedFromKey(key string) (int64, error) {
	return strconv.ParseInt(strings.TrimPrefix(key, groupsFolder+"-"), 10, 64)
}

// keyToPathTransform maps `<folder>-<name>` to <folder>/<name>. Only the
// first dash separates, so `tabgroups--5` lands on "-5" and never on "5".
func keyToPathTransform(s string) *diskv.PathKey {
	folder, name, ok := strings.Cut(s, "-")
	if !ok {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{folder},
		FileName: name,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
