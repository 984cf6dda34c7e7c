// Package remove deletes saved groups and single tabs.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tidy/pkg/state"
	"tableflip.dev/tidy/pkg/store"
	"tableflip.dev/tidy/pkg/tabgroup"
)

// Group deletes a whole group.
type Group struct {
	State     *state.Store
	DateAdded int64
}

func (g *Group) Do(ctx context.Context) error {
	if g.State == nil {
		return errors.New("can not delete, no state")
	}
	return g.State.DeleteTabGroup(ctx, g.DateAdded)
}

// Tab deletes the entries of one group that point at URL.
type Tab struct {
	State     *state.Store
	DateAdded int64
	URL       string
}

func (t *Tab) Do(ctx context.Context) error {
	if t.State == nil {
		return errors.New("can not delete, no state")
	}
	if err := t.State.Hydrate(ctx); err != nil {
		return err
	}
	group, ok := find(t.State.Snapshot().Data.TabGroups, t.DateAdded)
	if !ok {
		return fmt.Errorf("%w: %d", store.ErrGroupNotFound, t.DateAdded)
	}
	return t.State.DeleteTab(ctx, group, t.URL)
}

func find(groups []tabgroup.TabGroup, dateAdded int64) (tabgroup.TabGroup, bool) {
	for _, g := range groups {
		if g.DateAdded == dateAdded {
			return g, true
		}
	}
	return tabgroup.TabGroup{}, false
}
