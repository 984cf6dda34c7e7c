package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"tableflip.dev/tidy/pkg/store"
	"tableflip.dev/tidy/pkg/version"
)

type testConfig struct {
	dir string
}

func (t testConfig) BasePath() string     { return filepath.Join(t.dir, "db") }
func (t testConfig) TabsPath() string     { return filepath.Join(t.dir, "window.yaml") }
func (t testConfig) DefaultTheme() string { return "dark" }
func (t testConfig) LogLevel() string     { return "debug" }
func (t testConfig) LogJSON() bool        { return true }

func TestNewWiresConfig(t *testing.T) {
	cfg := testConfig{dir: t.TempDir()}
	a, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if a.Backing.BasePath() != cfg.BasePath() {
		t.Errorf("store base = %q", a.Backing.BasePath())
	}
	if a.Tabs.Path != cfg.TabsPath() {
		t.Errorf("tabs path = %q", a.Tabs.Path)
	}

	if err := a.State.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	snap := a.State.Snapshot()
	if snap.Theme != "dark" {
		t.Errorf("theme = %q, want configured default", snap.Theme)
	}
	if snap.Version != version.Version {
		t.Errorf("version = %q", snap.Version)
	}

	p, err := a.Backing.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if p.StateVersion != snap.StateVersion {
		t.Errorf("export stateVersion %q, snapshot %q", p.StateVersion, snap.StateVersion)
	}
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(nil, zerolog.Nop()); err == nil {
		t.Fatal("expected error")
	}
}

var _ store.Config = testConfig{}
