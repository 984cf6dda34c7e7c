// Package theme shows or changes the persisted UI theme.
package theme

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tidy/pkg/state"
)

type Theme struct {
	State *state.Store
	// Name is the theme to set. Empty prints the current theme.
	Name string
	Out  io.Writer
}

func (t *Theme) Do(ctx context.Context) error {
	if t.State == nil {
		return errors.New("can not theme, no state")
	}
	out := t.Out
	if out == nil {
		out = color.Output
	}

	name := strings.TrimSpace(t.Name)
	if name == "" {
		if err := t.State.Hydrate(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, t.State.Snapshot().Theme)
		return err
	}
	if err := t.State.SetTheme(ctx, name); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, name)
	return err
}
