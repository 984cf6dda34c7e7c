// Package save stores the focused window's tabs as a new group.
package save

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/tidy/pkg/filter"
	"tableflip.dev/tidy/pkg/printers"
	"tableflip.dev/tidy/pkg/state"
)

type Save struct {
	State  *state.Store
	Filter string
	JSON   bool
	Out    io.Writer
}

func (s *Save) Do(ctx context.Context) error {
	if s.State == nil {
		return errors.New("can not save, no state")
	}
	keep, err := filter.Compile(s.Filter)
	if err != nil {
		return err
	}
	saved, err := s.State.SaveTabGroup(ctx, keep)
	if err != nil {
		return err
	}
	if err := s.State.Hydrate(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Theme: s.State.Snapshot().Theme, Out: s.Out}
	if s.JSON {
		return pp.JSON(map[string]any{
			"saved": saved,
			"count": len(saved),
		})
	}
	pp.NewLine()
	pp.TitleWithCount("Saved", len(saved))
	pp.Saved(saved...)
	return nil
}
