package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/commands/options"
	"tableflip.dev/tidy/pkg/runner/save"
)

func addSave(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "save",
		Short: base.Wrap80("Save the tabs of the focused window as a new tab group. Browser pages and tabs without a url are skipped."),
		Example: `
tidy save
tidy save --filter '!pinned'
tidy save --filter 'host endsWith "github.com"' --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			s := save.Save{
				State:  a.State,
				Filter: fo.Filter,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFilterArg(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
