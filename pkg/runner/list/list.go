// Package list prints the saved tab groups, newest first.
package list

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/tidy/pkg/printers"
	"tableflip.dev/tidy/pkg/state"
	"tableflip.dev/tidy/pkg/tabgroup"
	"tableflip.dev/tidy/pkg/timeutil"
)

type List struct {
	State *state.Store
	Query string
	// Since hides groups older than this. Zero shows all.
	Since  time.Duration
	Now    func() time.Time
	JSON   bool
	Table  bool
	ShowID bool
	Out    io.Writer
}

// Do prunes empty groups before loading so they are never listed.
func (l *List) Do(ctx context.Context) error {
	if l.State == nil {
		return errors.New("can not list, no state")
	}
	if err := l.State.PruneEmptyTabGroups(ctx); err != nil {
		return err
	}
	if err := l.State.Hydrate(ctx); err != nil {
		return err
	}
	l.State.SetSearchQuery(l.Query)
	l.Print()
	return nil
}

// Print renders the current projection without touching the store.
func (l *List) Print() {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	groups := recent(l.State.SortedAndFilteredTabGroups(), now(), l.Since)
	pp := printers.PrettyPrint{ShowID: l.ShowID, Theme: l.State.Snapshot().Theme, Out: l.Out, Now: now}

	switch {
	case l.JSON:
		_ = pp.JSON(map[string]any{
			"query":     l.Query,
			"tabGroups": groups,
			"count":     len(groups),
		})
	case l.Table:
		pp.Table(groups...)
	default:
		pp.NewLine()
		pp.Groups(groups...)
	}
}

func recent(groups []tabgroup.TabGroup, now time.Time, since time.Duration) []tabgroup.TabGroup {
	if since <= 0 {
		return groups
	}
	out := groups[:0]
	for _, g := range groups {
		if timeutil.Within(now, g.DateAdded, since) {
			out = append(out, g)
		}
	}
	return out
}
