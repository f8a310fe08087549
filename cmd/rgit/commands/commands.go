package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rgit-vcs/rgit/internal/native"
	"github.com/spf13/cobra"
)

var flagJSON bool

// Cmd implements `rgit commands`: it lists the subcommands with an
// in-process implementation.
var Cmd = &cobra.Command{
	Use:           "commands",
	Short:         "List natively implemented subcommands",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := native.Names()
		if flagJSON {
			// Success output must be a single JSON line.
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(map[string]any{"native": names})
		}
		for _, name := range names {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the list as a single JSON line")
}
