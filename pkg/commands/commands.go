package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tidy/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tidy",
		Short: base.Wrap80("Save the tabs of your browser window as groups and find them again later."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSave(topLevel)
	addList(topLevel)
	addDelete(topLevel)
	addDeleteTab(topLevel)
	addImport(topLevel)
	addExport(topLevel)
	addPrune(topLevel)
	addTheme(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
