package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions selects a saved group by id and toggles id columns in output.
type IDOptions struct {
	ShowID    bool
	DateAdded int64
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each tab group.")
}

// ParseID reads a tab group id from a command argument.
func (o *IDOptions) ParseID(arg string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid tab group id %q", arg)
	}
	o.DateAdded = id
	return nil
}
