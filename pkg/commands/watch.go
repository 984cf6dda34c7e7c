package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/commands/options"
	"tableflip.dev/tidy/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: base.Wrap80("Keep the list of saved tab groups on screen, reprinting it whenever the store changes or the process receives SIGUSR1."),
		Example: `
tidy watch
tidy watch --query docs
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			w := watch.Watch{
				State:   a.State,
				Watcher: a.Backing,
				Tabs:    a.Tabs,
				Log:     a.Log,
				Query:   qo.Query,
				JSON:    oo.JSON,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(w.Do(cmd.Context()))
		},
	}

	options.AddQueryArg(cmd, qo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
