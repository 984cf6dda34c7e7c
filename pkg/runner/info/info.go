// Package info reports where tidy keeps its data.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tidy/pkg/state"
	"tableflip.dev/tidy/pkg/store"
)

type Info struct {
	Config store.Config
	State  *state.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TIDY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TIDY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "TIDY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.State == nil {
		return fmt.Errorf("failed to create state")
	}
	if err := n.State.Hydrate(ctx); err != nil {
		return err
	}
	snap := n.State.Snapshot()

	empty := 0
	tabCount := 0
	for _, g := range snap.Data.TabGroups {
		if g.Empty() {
			empty++
		}
		tabCount += len(g.Tabs)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("store"), n.Config.BasePath())
	tbl.AddRow(bold.Sprint("window"), n.Config.TabsPath())
	tbl.AddRow(bold.Sprint("version"), snap.Version)
	tbl.AddRow(bold.Sprint("state version"), snap.StateVersion)
	tbl.AddRow(bold.Sprint("theme"), snap.Theme)
	tbl.AddRow(bold.Sprint("tab groups"), fmt.Sprintf("%d (%d empty)", len(snap.Data.TabGroups), empty))
	tbl.AddRow(bold.Sprint("tabs"), tabCount)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
