package root

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgit-vcs/rgit/cmd/rgit/commands"
	"github.com/rgit-vcs/rgit/cmd/rgit/version"
)

// NewRootCmd creates the root command for rgit. Flag parsing stays
// disabled so subcommand flags reach the launcher chain verbatim.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "rgit",
		Short:              "CLI: a git front end that dispatches subcommands through a launcher chain",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, rest, err := splitConfigFlag(args)
			if err != nil {
				return err
			}
			if len(rest) == 0 || rest[0] == "--help" || rest[0] == "-h" {
				return cmd.Help()
			}
			chain, err := buildChain(cfgPath)
			if err != nil {
				return err
			}
			return chain.Launch(cmd.Context(), rest[0], rest[1:])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(commands.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

// splitConfigFlag consumes a leading --config flag. It is handled by hand
// because root flag parsing is off; everything after it belongs to the
// dispatched subcommand.
func splitConfigFlag(args []string) (cfgPath string, rest []string, err error) {
	if len(args) == 0 {
		return "", args, nil
	}
	switch {
	case args[0] == "--config":
		if len(args) < 2 {
			return "", nil, errMissingConfigValue
		}
		return args[1], args[2:], nil
	case strings.HasPrefix(args[0], "--config="):
		v := strings.TrimPrefix(args[0], "--config=")
		if v == "" {
			return "", nil, errMissingConfigValue
		}
		return v, args[1:], nil
	}
	return "", args, nil
}
