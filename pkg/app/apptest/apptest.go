// Package apptest builds throwaway Apps over temporary directories.
package apptest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/tabs"
)

// Config points every path at one temporary directory.
type Config struct {
	Dir   string
	Theme string
}

func (c Config) BasePath() string { return filepath.Join(c.Dir, "db") }
func (c Config) TabsPath() string { return filepath.Join(c.Dir, "window.yaml") }
func (c Config) LogLevel() string { return "debug" }
func (c Config) LogJSON() bool    { return false }

func (c Config) DefaultTheme() string {
	if c.Theme == "" {
		return "light"
	}
	return c.Theme
}

// New returns an App whose tab source serves window.
func New(t testing.TB, window tabs.Snapshot) *app.App {
	t.Helper()
	cfg := Config{Dir: t.TempDir()}
	WriteWindow(t, cfg.TabsPath(), window)
	a, err := app.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("apptest: %v", err)
	}
	return a
}

// WriteWindow replaces the snapshot file at path.
func WriteWindow(t testing.TB, path string, window tabs.Snapshot) {
	t.Helper()
	data, err := yaml.Marshal(window)
	if err != nil {
		t.Fatalf("apptest: encode window: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("apptest: write window: %v", err)
	}
}

// Window returns a focused window holding the given tabs, the first one
// being the current tab.
func Window(list ...tabs.Tab) tabs.Snapshot {
	for i := range list {
		if list[i].ID == 0 {
			list[i].ID = i + 1
		}
		list[i].Index = i
	}
	current := 0
	if len(list) > 0 {
		current = list[0].ID
	}
	return tabs.Snapshot{
		CurrentTabID: current,
		Windows:      []tabs.Window{{ID: 1, Focused: true, Tabs: list}},
	}
}
