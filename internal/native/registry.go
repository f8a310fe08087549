package native

import (
	"context"
	"sort"
)

// Runner executes one in-process subcommand.
type Runner func(ctx context.Context, args []string) error

var registry = map[string]Runner{}

// Register adds a command runner.
func Register(name string, r Runner) {
	registry[name] = r
}

// Run executes a registered command by name.
func Run(ctx context.Context, name string, args []string) error {
	r, ok := registry[name]
	if !ok {
		return ErrUnknown{name: name}
	}
	return r(ctx, args)
}

// Names returns the registered command names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ErrUnknown is returned when a command has no in-process implementation.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown native command: " + e.name }
