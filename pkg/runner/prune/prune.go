// Package prune deletes saved groups that hold no tabs.
package prune

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/tidy/pkg/state"
)

type Prune struct {
	State *state.Store
	Out   io.Writer
}

func (p *Prune) Do(ctx context.Context) error {
	if p.State == nil {
		return errors.New("can not prune, no state")
	}
	if err := p.State.Hydrate(ctx); err != nil {
		return err
	}
	before := len(p.State.Snapshot().Data.TabGroups)
	if err := p.State.PruneEmptyTabGroups(ctx); err != nil {
		return err
	}
	if err := p.State.Hydrate(ctx); err != nil {
		return err
	}
	removed := before - len(p.State.Snapshot().Data.TabGroups)

	out := p.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.Faint).Fprintf(out, "pruned %d empty group(s)\n", removed)
	return nil
}
