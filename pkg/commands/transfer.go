package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tidy/pkg/app"
	"tableflip.dev/tidy/pkg/runner/transfer"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import",
		Short: base.Wrap80("Replace every saved tab group with the contents of an exported JSON or YAML document. Use - to read stdin."),
		Example: `
tidy import tabs.json
tidy export | ssh other tidy import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return err
			}
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			i := transfer.Import{
				State: a.State,
				In:    in,
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every saved tab group as a JSON document.",
		Example: `
tidy export > tabs.json
tidy export tabs.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := app.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			e := transfer.Export{
				Exporter: a.Backing,
				Out:      out,
			}
			return e.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
