package state

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tableflip.dev/tidy/pkg/tabgroup"
	"tableflip.dev/tidy/pkg/tabs"
)

type memoryBacking struct {
	mu     sync.Mutex
	next   int64
	groups map[int64]tabgroup.TabGroup
	calls  []string

	err error // returned by every call when set

	// entryGate, when set, is received from before each CreateEntry.
	entryGate chan struct{}
}

func newMemoryBacking(groups ...tabgroup.TabGroup) *memoryBacking {
	m := &memoryBacking{next: 1000, groups: make(map[int64]tabgroup.TabGroup)}
	for _, g := range groups {
		m.groups[g.DateAdded] = g.Clone()
	}
	return m
}

func (m *memoryBacking) record(call string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
	return m.err
}

func (m *memoryBacking) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *memoryBacking) CreateGroup(context.Context) (tabgroup.GroupRef, error) {
	if err := m.record("createGroup"); err != nil {
		return tabgroup.GroupRef{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	g := tabgroup.TabGroup{DateAdded: m.next, Title: fmt.Sprintf("g%d", m.next), Tabs: []tabgroup.Tab{}}
	m.groups[g.DateAdded] = g
	return g.Ref(), nil
}

func (m *memoryBacking) CreateEntry(_ context.Context, ref tabgroup.GroupRef, title, url string) error {
	if m.entryGate != nil {
		<-m.entryGate
	}
	if err := m.record("createEntry:" + url); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[ref.DateAdded]
	if !ok {
		return fmt.Errorf("missing group %d", ref.DateAdded)
	}
	g.Tabs = append(g.Tabs, tabgroup.Tab{Title: title, URL: url})
	m.groups[ref.DateAdded] = g
	return nil
}

func (m *memoryBacking) RemoveGroup(_ context.Context, dateAdded int64) error {
	if err := m.record(fmt.Sprintf("removeGroup:%d", dateAdded)); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.groups, dateAdded)
	return nil
}

func (m *memoryBacking) RemoveEntry(_ context.Context, ref tabgroup.GroupRef, url string) error {
	if err := m.record("removeEntry:" + url); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[ref.DateAdded]
	if !ok {
		return nil
	}
	kept := make([]tabgroup.Tab, 0, len(g.Tabs))
	for _, t := range g.Tabs {
		if t.URL != url {
			kept = append(kept, t)
		}
	}
	g.Tabs = kept
	m.groups[ref.DateAdded] = g
	return nil
}

func (m *memoryBacking) ListGroups(context.Context) ([]tabgroup.TabGroup, error) {
	if err := m.record("listGroups"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]tabgroup.TabGroup, 0, len(m.groups))
	for _, g := range m.groups {
		out = append(out, g.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateAdded < out[j].DateAdded })
	return out, nil
}

func (m *memoryBacking) PruneEmpty(context.Context) error {
	if err := m.record("pruneEmpty"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, g := range m.groups {
		if g.Empty() {
			delete(m.groups, id)
		}
	}
	return nil
}

func (m *memoryBacking) BulkReplace(_ context.Context, raw []byte) error {
	if err := m.record("bulkReplace"); err != nil {
		return err
	}
	p, err := tabgroup.DecodePayload(raw)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups = make(map[int64]tabgroup.TabGroup)
	for _, g := range p.TabGroups {
		m.groups[g.DateAdded] = g
	}
	return nil
}

type fakeTabs struct {
	tabs  []tabs.Tab
	err   error
	tabID int
}

func (f *fakeTabs) CurrentWindowTabs(context.Context) ([]tabs.Tab, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]tabs.Tab(nil), f.tabs...), nil
}

func (f *fakeTabs) ShouldExclude(t tabs.Tab) bool {
	return tabs.ShouldExclude(t)
}

func (f *fakeTabs) CurrentTabID(context.Context) (int, error) {
	return f.tabID, nil
}

type memoryPrefs struct {
	mu     sync.Mutex
	values map[string]string
	sets   []string
	getErr error
	setErr error
}

func newMemoryPrefs() *memoryPrefs {
	return &memoryPrefs{values: make(map[string]string)}
}

func (p *memoryPrefs) Get(_ context.Context, key string) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.getErr != nil {
		return "", false, p.getErr
	}
	v, ok := p.values[key]
	return v, ok, nil
}

func (p *memoryPrefs) Set(_ context.Context, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.setErr != nil {
		return p.setErr
	}
	p.values[key] = value
	p.sets = append(p.sets, value)
	return nil
}

func (p *memoryPrefs) value(key string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[key]
}
