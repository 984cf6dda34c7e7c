// Package tabs enumerates the browser tabs that can be saved into a group.
package tabs

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNoFocusedWindow = errors.New("tabs: no focused window")
	ErrNoCurrentTab    = errors.New("tabs: current tab unknown")
)

// Tab is a live browser tab.
type Tab struct {
	ID       int    `json:"id" yaml:"id"`
	WindowID int    `json:"windowId" yaml:"windowId"`
	Index    int    `json:"index" yaml:"index"`
	Title    string `json:"title" yaml:"title"`
	URL      string `json:"url" yaml:"url"`
	Pinned   bool   `json:"pinned,omitempty" yaml:"pinned,omitempty"`
	Active   bool   `json:"active,omitempty" yaml:"active,omitempty"`
}

// Predicate decides whether a tab should be kept.
type Predicate func(Tab) bool

// All keeps every tab.
func All(Tab) bool { return true }

// Source enumerates the tabs of the active window.
type Source interface {
	// CurrentWindowTabs returns the tabs of the focused window in display order.
	CurrentWindowTabs(ctx context.Context) ([]Tab, error)
	// ShouldExclude reports tabs that are never saved.
	ShouldExclude(tab Tab) bool
	// CurrentTabID identifies the tab hosting this context.
	CurrentTabID(ctx context.Context) (int, error)
}

// ExtensionScheme prefixes the extension's own pages.
const ExtensionScheme = "chrome-extension:"

var internalSchemes = []string{
	"chrome:",
	"chrome-extension:",
	"chrome-search:",
	"chrome-devtools:",
	"devtools:",
	"edge:",
	"about:",
	"moz-extension:",
	"view-source:",
	"brave:",
	"opera:",
	"vivaldi:",
}

// ShouldExclude is the fixed policy for tabs that are never saved: tabs
// without a url and browser-internal or extension pages.
func ShouldExclude(tab Tab) bool {
	u := strings.ToLower(strings.TrimSpace(tab.URL))
	if u == "" {
		return true
	}
	for _, scheme := range internalSchemes {
		if strings.HasPrefix(u, scheme) {
			return true
		}
	}
	return false
}

// Filter returns the tabs that pass the exclusion policy and then keep. The
// result is never nil.
func Filter(list []Tab, exclude func(Tab) bool, keep Predicate) []Tab {
	if keep == nil {
		keep = All
	}
	out := make([]Tab, 0, len(list))
	for _, t := range list {
		if exclude != nil && exclude(t) {
			continue
		}
		if !keep(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
