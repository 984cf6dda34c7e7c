// Package printers renders tab groups for the terminal.
package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tidy/pkg/tabgroup"
	"tableflip.dev/tidy/pkg/tabs"
	"tableflip.dev/tidy/pkg/timeutil"
)

// PrettyPrint writes coloured group listings.
type PrettyPrint struct {
	ShowID bool
	Theme  string
	Out    io.Writer
	Now    func() time.Time
}

var (
	spacing = strings.Repeat(" ", len("1700000000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now != nil {
		return pp.Now()
	}
	return time.Now()
}

func (pp *PrettyPrint) link() *color.Color {
	if pp.Theme == "dark" {
		return color.New(color.FgHiCyan, color.Faint)
	}
	return color.New(color.FgBlue, color.Faint)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints a heading followed by a faint tab count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " tab")
	default:
		_, _ = c.Fprintln(pp.out(), " tabs")
	}
}

// Groups prints each group as a dated heading with its tabs below.
func (pp *PrettyPrint) Groups(groups ...tabgroup.TabGroup) {
	if len(groups) == 0 {
		pp.none()
		return
	}
	for _, g := range groups {
		title := fmt.Sprintf("%s (%s)", Created(g.DateAdded), ago(pp.now(), g.DateAdded))
		pp.TitleWithCount(title, len(g.Tabs))
		pp.groupTabs(g)
	}
}

func (pp *PrettyPrint) groupTabs(g tabgroup.TabGroup) {
	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	l := pp.link()

	id := strconv.FormatInt(g.DateAdded, 10)
	for i, tab := range g.Tabs {
		if pp.ShowID {
			if i == 0 {
				_, _ = y.Fprint(pp.out(), id)
				_, _ = y.Fprint(pp.out(), strings.Repeat(" ", len(spacing)-len(id)))
			} else {
				_, _ = y.Fprint(pp.out(), spacing)
			}
		}
		_, _ = t.Fprintf(pp.out(), "%s ", displayTitle(tab.Title, tab.URL))
		_, _ = l.Fprintln(pp.out(), tab.URL)
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Saved prints the live tabs that were just stored.
func (pp *PrettyPrint) Saved(saved ...tabs.Tab) {
	if len(saved) == 0 {
		pp.none()
		return
	}
	t := color.New()
	l := pp.link()
	for _, tab := range saved {
		_, _ = t.Fprintf(pp.out(), "%s ", displayTitle(tab.Title, tab.URL))
		_, _ = l.Fprintln(pp.out(), tab.URL)
	}
	_, _ = t.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Created formats a group id as its local creation time.
func Created(dateAdded int64) string {
	return time.UnixMilli(dateAdded).Local().Format("Mon Jan 2 2006, 15:04")
}

func ago(now time.Time, dateAdded int64) string {
	a := timeutil.Ago(now, time.UnixMilli(dateAdded))
	if a == "now" {
		return "just now"
	}
	return a + " ago"
}

func displayTitle(title, url string) string {
	if strings.TrimSpace(title) == "" {
		return url
	}
	return title
}
