package native

import "context"

// Launcher dispatches subcommands through the in-process registry. Names
// without a registered runner fail with ErrUnknown so a surrounding
// fallback chain can hand them to the next launcher.
type Launcher struct{}

func (Launcher) Launch(ctx context.Context, name string, args []string) error {
	return Run(ctx, name, args)
}
