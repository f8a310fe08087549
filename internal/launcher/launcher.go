package launcher

import "context"

// Launcher attempts to run a named subcommand with its arguments and
// reports success (nil) or failure. Side effects, such as spawning a
// child process, are a contract of the concrete variant.
type Launcher interface {
	Launch(ctx context.Context, name string, args []string) error
}
