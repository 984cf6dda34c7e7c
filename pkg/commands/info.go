package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where tab groups are stored.",
		Example: `
tidy info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return err
			}
			s := info.Info{
				Config: a.Config,
				State:  a.State,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
