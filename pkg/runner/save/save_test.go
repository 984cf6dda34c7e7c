package save

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/tidy/pkg/app/apptest"
	"tableflip.dev/tidy/pkg/tabs"
)

func init() {
	color.NoColor = true
}

func window() tabs.Snapshot {
	return apptest.Window(
		tabs.Tab{Title: "Extension", URL: "chrome-extension://abc/index.html"},
		tabs.Tab{Title: "Go", URL: "https://go.dev"},
		tabs.Tab{Title: "Pinned mail", URL: "https://mail.example.com", Pinned: true},
		tabs.Tab{Title: "Settings", URL: "chrome://settings"},
	)
}

func TestSaveStoresAndRefreshes(t *testing.T) {
	a := apptest.New(t, window())
	var buf bytes.Buffer
	s := &Save{State: a.State, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	groups := a.State.Snapshot().Data.TabGroups
	if len(groups) != 1 || len(groups[0].Tabs) != 2 {
		t.Fatalf("groups = %+v", groups)
	}
	if !strings.Contains(buf.String(), "Saved - 2 tabs") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestSaveFilter(t *testing.T) {
	a := apptest.New(t, window())
	var buf bytes.Buffer
	s := &Save{State: a.State, Filter: "!pinned", JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out struct {
		Saved []tabs.Tab `json:"saved"`
		Count int        `json:"count"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if out.Count != 1 || out.Saved[0].URL != "https://go.dev" {
		t.Fatalf("saved = %+v", out)
	}
}

func TestSaveBadFilter(t *testing.T) {
	a := apptest.New(t, window())
	s := &Save{State: a.State, Filter: "title +", Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected compile error")
	}
	if n := len(a.State.Snapshot().Data.TabGroups); n != 0 {
		t.Fatalf("groups created on bad filter: %d", n)
	}
}
