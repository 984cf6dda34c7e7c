package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/commands/options"
	"tableflip.dev/tidy/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete a saved tab group.",
		Example: `
tidy delete <tab group id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a tab group id")
			}
			return io.ParseID(args[0])
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return groupCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			r := remove.Group{
				State:     a.State,
				DateAdded: io.DateAdded,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addDeleteTab(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "delete-tab",
		Short: "Delete every tab with a url from a saved tab group.",
		Example: `
tidy delete-tab <tab group id> https://example.com
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a tab group id and a url")
			}
			return io.ParseID(args[0])
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return groupCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
			case 1:
				return urlCompletions(cmd.Context(), args[0], toComplete), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			r := remove.Tab{
				State:     a.State,
				DateAdded: io.DateAdded,
				URL:       args[1],
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
