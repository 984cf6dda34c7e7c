// Package tabgroup defines saved tab groups and the entries they hold.
package tabgroup

import "strings"

// Tab is one saved tab entry inside a group.
type Tab struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Matches reports whether the lowercased query q is contained in the tab's
// title or url, ignoring case. An empty q matches every tab.
func (t Tab) Matches(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.URL), q)
}

// TabGroup is a saved collection of tabs. DateAdded is the only identity a
// group has.
type TabGroup struct {
	DateAdded int64  `json:"dateAdded" yaml:"dateAdded"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Tabs      []Tab  `json:"tabs" yaml:"tabs"`
}

// Empty reports whether the group holds no tabs.
func (g TabGroup) Empty() bool {
	return len(g.Tabs) == 0
}

// HasMatch reports whether at least one tab matches q.
func (g TabGroup) HasMatch(q string) bool {
	for _, t := range g.Tabs {
		if t.Matches(q) {
			return true
		}
	}
	return false
}

// Ref returns the identity of the group.
func (g TabGroup) Ref() GroupRef {
	return GroupRef{DateAdded: g.DateAdded, Title: g.Title}
}

// Clone returns a deep copy of the group.
func (g TabGroup) Clone() TabGroup {
	out := g
	if g.Tabs != nil {
		out.Tabs = make([]Tab, len(g.Tabs))
		copy(out.Tabs, g.Tabs)
	}
	return out
}

// GroupRef identifies a group container in a backing store.
type GroupRef struct {
	DateAdded int64
	Title     string
}

// CloneList deep copies a list of groups. A nil list stays nil.
func CloneList(groups []TabGroup) []TabGroup {
	if groups == nil {
		return nil
	}
	out := make([]TabGroup, len(groups))
	for i := range groups {
		out[i] = groups[i].Clone()
	}
	return out
}
