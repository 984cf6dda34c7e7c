// Package app assembles the configured store, tab source and state controller
// shared by the CLI commands and the MCP server.
package app

import (
	"errors"

	"github.com/rs/zerolog"

	"tableflip.dev/tidy/pkg/logging"
	"tableflip.dev/tidy/pkg/state"
	"tableflip.dev/tidy/pkg/store"
	"tableflip.dev/tidy/pkg/tabs"
	"tableflip.dev/tidy/pkg/version"
)

// App holds the collaborators of one tidy process.
type App struct {
	Config  store.Config
	Log     zerolog.Logger
	Backing *store.Diskv
	Tabs    *tabs.FileSource
	State   *state.Store
}

// Load reads the configuration and opens everything built from it.
func Load() (*App, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg, logging.New(cfg))
}

// New builds an App from cfg, logging through log.
func New(cfg store.Config, log zerolog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: no config")
	}
	stateVersion, err := state.StateVersionOf(version.Version)
	if err != nil {
		return nil, err
	}
	backing, err := store.Load(cfg, store.WithStateVersion(stateVersion))
	if err != nil {
		return nil, err
	}
	src := tabs.NewFileSource(cfg.TabsPath())
	st, err := state.New(backing, src, backing.Preferences(),
		state.WithLogger(log),
		state.WithDefaultTheme(cfg.DefaultTheme()),
	)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:  cfg,
		Log:     log,
		Backing: backing,
		Tabs:    src,
		State:   st,
	}, nil
}
