package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Print or change the theme.",
		Example: `
tidy theme
tidy theme dark
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return err
			}
			t := theme.Theme{
				State: a.State,
				Out:   cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				t.Name = args[0]
			}
			return t.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
