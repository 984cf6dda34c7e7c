package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/runner/prune"
)

func addPrune(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete saved tab groups that have no tabs left.",
		Example: `
tidy prune
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return err
			}
			p := prune.Prune{
				State: a.State,
				Out:   cmd.OutOrStdout(),
			}
			return p.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
