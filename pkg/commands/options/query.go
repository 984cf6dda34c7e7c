package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tidy/pkg/timeutil"
)

// QueryOptions narrows listed groups by search text and age.
type QueryOptions struct {
	Query string
	Since string
}

func AddQueryArg(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Only show tabs whose title or url contains this text.")
}

func AddSinceArg(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		"Only show tab groups saved within this age, e.g. 2w or 3d12h.")
}

// MaxAge parses --since. Zero means no limit.
func (o *QueryOptions) MaxAge() (time.Duration, error) {
	return timeutil.ParseAge(o.Since)
}

// FilterOptions holds the tab filter expression used when saving.
type FilterOptions struct {
	Filter string
}

func AddFilterArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		`Only save tabs matching this expression, e.g. '!pinned && host endsWith "github.com"'.`)
}
