package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/commands/options"
	"tableflip.dev/tidy/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved tab groups, newest first.",
		Example: `
tidy list
tidy list --query golang --show-id
tidy list --table
tidy list --since 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			since, err := qo.MaxAge()
			if err != nil {
				return oo.HandleError(err)
			}
			a, err := app.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				State:  a.State,
				Query:  qo.Query,
				Since:  since,
				JSON:   oo.JSON,
				Table:  oo.Table,
				ShowID: io.ShowID,
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddQueryArg(cmd, qo)
	options.AddSinceArg(cmd, qo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	options.AddTableArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
