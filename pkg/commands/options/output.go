// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions switches listings from the pretty form to JSON or a table.
type OutputOptions struct {
	JSON  bool
	Table bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func AddTableArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.Table, "table", false,
		"Output one row per tab group.")
}

// HandleError reports err as a JSON document when JSON output was requested.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
