package commands

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tidy/pkg/store"
	"tableflip.dev/tidy/pkg/tabgroup"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(tidy completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(tidy completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func storedGroups(ctx context.Context) []tabgroup.TabGroup {
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	groups, err := p.ListGroups(ctx)
	if err != nil {
		return nil
	}
	return groups
}

func groupCompletions(ctx context.Context, toComplete string) []string {
	var ids []string
	for _, g := range storedGroups(ctx) {
		id := strconv.FormatInt(g.DateAdded, 10)
		if strings.HasPrefix(id, toComplete) {
			ids = append(ids, id)
		}
	}
	return ids
}

func urlCompletions(ctx context.Context, id, toComplete string) []string {
	var urls []string
	for _, g := range storedGroups(ctx) {
		if strconv.FormatInt(g.DateAdded, 10) != id {
			continue
		}
		for _, t := range g.Tabs {
			if strings.HasPrefix(t.URL, toComplete) {
				urls = append(urls, t.URL)
			}
		}
	}
	return urls
}
