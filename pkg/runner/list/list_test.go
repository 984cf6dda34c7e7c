package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tidy/pkg/app/apptest"
	"tableflip.dev/tidy/pkg/tabgroup"
	"tableflip.dev/tidy/pkg/tabs"
)

func init() {
	color.NoColor = true
}

const payload = `{
  "tabGroups": [
    {"dateAdded": 1, "tabs": [{"title": "Go", "url": "https://go.dev"}, {"title": "Rust", "url": "https://rust-lang.org"}]},
    {"dateAdded": 2, "tabs": []},
    {"dateAdded": 3, "tabs": [{"title": "Docs", "url": "https://go.dev/doc"}]}
  ]
}`

func TestListPrunesAndProjects(t *testing.T) {
	ctx := context.Background()
	a := apptest.New(t, apptest.Window(tabs.Tab{URL: "https://example.com"}))
	if err := a.State.ImportData(ctx, []byte(payload)); err != nil {
		t.Fatalf("import: %v", err)
	}

	var buf bytes.Buffer
	l := &List{State: a.State, Query: "GO.dev", JSON: true, Out: &buf}
	if err := l.Do(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}

	var out struct {
		TabGroups []tabgroup.TabGroup `json:"tabGroups"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.TabGroups) != 2 || out.TabGroups[0].DateAdded != 3 || out.TabGroups[1].DateAdded != 1 {
		t.Fatalf("groups = %+v", out.TabGroups)
	}
	if len(out.TabGroups[1].Tabs) != 1 {
		t.Fatalf("expected narrowed group, got %+v", out.TabGroups[1])
	}

	stored, err := a.Backing.ListGroups(ctx)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("empty group was not pruned: %+v", stored)
	}
}

func TestListTable(t *testing.T) {
	ctx := context.Background()
	a := apptest.New(t, apptest.Window(tabs.Tab{URL: "https://example.com"}))
	if err := a.State.ImportData(ctx, []byte(payload)); err != nil {
		t.Fatalf("import: %v", err)
	}

	var buf bytes.Buffer
	if err := (&List{State: a.State, Table: true, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(buf.String(), "Docs") {
		t.Fatalf("table missing row: %q", buf.String())
	}
}

func TestListSince(t *testing.T) {
	ctx := context.Background()
	a := apptest.New(t, apptest.Window(tabs.Tab{URL: "https://example.com"}))
	if err := a.State.ImportData(ctx, []byte(payload)); err != nil {
		t.Fatalf("import: %v", err)
	}

	var buf bytes.Buffer
	l := &List{
		State: a.State,
		Since: time.Millisecond,
		Now:   func() time.Time { return time.UnixMilli(3) },
		JSON:  true,
		Out:   &buf,
	}
	if err := l.Do(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}
	var out struct {
		TabGroups []tabgroup.TabGroup `json:"tabGroups"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.TabGroups) != 1 || out.TabGroups[0].DateAdded != 3 {
		t.Fatalf("groups = %+v", out.TabGroups)
	}
}
