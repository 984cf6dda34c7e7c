package tabs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShouldExclude(t *testing.T) {
	cases := map[string]bool{
		"":                              true,
		"chrome://newtab/":              true,
		"chrome-extension://abc/x.html": true,
		"About:blank":                   true,
		"moz-extension://x":             true,
		"https://go.dev":                false,
		"http://localhost:8080":         false,
		"file:///tmp/a.html":            false,
	}
	for u, want := range cases {
		if got := ShouldExclude(Tab{URL: u}); got != want {
			t.Errorf("ShouldExclude(%q) = %v, want %v", u, got, want)
		}
	}
}

func TestFilterAppliesExclusionThenPredicate(t *testing.T) {
	list := []Tab{
		{ID: 1, URL: "chrome://settings"},
		{ID: 2, URL: "https://a.example", Pinned: true},
		{ID: 3, URL: "https://b.example"},
	}
	var seen []int
	keep := func(tab Tab) bool {
		seen = append(seen, tab.ID)
		return !tab.Pinned
	}
	got := Filter(list, ShouldExclude, keep)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("unexpected result %+v", got)
	}
	if len(seen) != 2 {
		t.Fatalf("predicate saw excluded tabs: %v", seen)
	}
}

func TestFilterNeverNil(t *testing.T) {
	if got := Filter(nil, nil, nil); got == nil {
		t.Fatal("expected non-nil empty slice")
	}
}

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "window.yaml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(body)), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

func TestFileSourceFocusedWindow(t *testing.T) {
	path := writeSnapshot(t, `
currentTabId: 7
windows:
  - id: 1
    tabs:
      - {id: 1, index: 0, title: other, url: "https://other"}
  - id: 2
    focused: true
    tabs:
      - {id: 5, index: 1, title: B, url: "https://b"}
      - {id: 4, index: 0, title: A, url: "https://a"}
`)
	src := NewFileSource(path)
	got, err := src.CurrentWindowTabs(context.Background())
	if err != nil {
		t.Fatalf("tabs: %v", err)
	}
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "B" {
		t.Fatalf("unexpected tabs %+v", got)
	}
	if got[0].WindowID != 2 {
		t.Fatalf("expected window id to be filled, got %d", got[0].WindowID)
	}
	id, err := src.CurrentTabID(context.Background())
	if err != nil || id != 7 {
		t.Fatalf("CurrentTabID = %d, %v", id, err)
	}
}

func TestFileSourceNoFocusedWindow(t *testing.T) {
	path := writeSnapshot(t, `{"windows":[{"id":1,"tabs":[]}]}`)
	src := NewFileSource(path)
	if _, err := src.CurrentWindowTabs(context.Background()); !errors.Is(err, ErrNoFocusedWindow) {
		t.Fatalf("expected ErrNoFocusedWindow, got %v", err)
	}
	if _, err := src.CurrentTabID(context.Background()); !errors.Is(err, ErrNoCurrentTab) {
		t.Fatalf("expected ErrNoCurrentTab, got %v", err)
	}
}
