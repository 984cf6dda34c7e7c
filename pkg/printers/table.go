package printers

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tidy/pkg/tabgroup"
)

// Table prints one row per group: id, creation time, tab count and the
// first tab's title.
func (pp *PrettyPrint) Table(groups ...tabgroup.TabGroup) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Created"), bold.Sprint("Tabs"), bold.Sprint("First"))
	for _, g := range groups {
		first := ""
		if len(g.Tabs) > 0 {
			first = displayTitle(g.Tabs[0].Title, g.Tabs[0].URL)
		}
		tbl.AddRow(strconv.FormatInt(g.DateAdded, 10), Created(g.DateAdded), len(g.Tabs), first)
	}
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
