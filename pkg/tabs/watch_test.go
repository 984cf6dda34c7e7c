package tabs

import (
	"context"
	"os"
	"testing"
	"time"
)

const highlightedSnapshot = `
currentTabId: 4
windows:
  - id: 1
    tabs:
      - {id: 1, index: 0, url: "https://other", active: true}
  - id: 2
    focused: true
    tabs:
      - {id: 5, index: 1, url: "https://b", active: true}
      - {id: 4, index: 0, url: "https://a", active: true}
      - {id: 6, index: 2, url: "https://c"}
`

func TestFileSourceHighlighted(t *testing.T) {
	src := NewFileSource(writeSnapshot(t, highlightedSnapshot))
	h, err := src.Highlighted(context.Background())
	if err != nil {
		t.Fatalf("highlighted: %v", err)
	}
	if h.WindowID != 2 || len(h.TabIDs) != 2 || h.TabIDs[0] != 4 || h.TabIDs[1] != 5 {
		t.Fatalf("unexpected highlight %+v", h)
	}
}

func TestFileSourceHighlightsFollowRewrites(t *testing.T) {
	path := writeSnapshot(t, `{"windows":[{"id":2,"focused":true,"tabs":[{"id":4,"index":0}]}]}`)
	src := NewFileSource(path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	highlights, err := src.Highlights(ctx)
	if err != nil {
		t.Fatalf("highlights: %v", err)
	}

	if err := os.WriteFile(path, []byte(highlightedSnapshot), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	select {
	case h := <-highlights:
		if h.WindowID != 2 || len(h.TabIDs) != 2 || h.TabIDs[0] != 4 {
			t.Fatalf("unexpected highlight %+v", h)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no highlight after rewrite")
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-highlights:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("highlights not closed after cancel")
		}
	}
}
