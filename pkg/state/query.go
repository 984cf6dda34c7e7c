package state

import (
	"sort"
	"strings"

	"tableflip.dev/tidy/pkg/tabgroup"
)

// Project derives the list shown to the user: non-empty groups matching the
// search query, newest first. When a query is set each group's tabs are
// narrowed to the matching ones. The snapshot is never modified and the
// result is never nil.
func Project(snap Snapshot) []tabgroup.TabGroup {
	q := strings.ToLower(snap.SearchQuery)

	out := make([]tabgroup.TabGroup, 0, len(snap.Data.TabGroups))
	for _, g := range snap.Data.TabGroups {
		if g.Empty() {
			continue
		}
		if q != "" && !g.HasMatch(q) {
			continue
		}
		out = append(out, g)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateAdded > out[j].DateAdded
	})

	for i := range out {
		if q == "" {
			out[i] = out[i].Clone()
			continue
		}
		out[i] = narrow(out[i], q)
	}
	return out
}

func narrow(g tabgroup.TabGroup, q string) tabgroup.TabGroup {
	matched := make([]tabgroup.Tab, 0, len(g.Tabs))
	for _, t := range g.Tabs {
		if t.Matches(q) {
			matched = append(matched, t)
		}
	}
	g.Tabs = matched
	return g
}
