package launcher

import "context"

// FallbackChain tries an ordered list of launchers until one succeeds.
// The chain is non-empty by construction.
type FallbackChain struct {
	head Launcher
	rest []Launcher
}

// NewFallbackChain builds a chain from a required first launcher plus any
// number of fallbacks, so an empty chain cannot be expressed.
func NewFallbackChain(first Launcher, rest ...Launcher) FallbackChain {
	return FallbackChain{head: first, rest: rest}
}

// Launch tries every launcher but the last, returning the first success.
// If none succeed, the last launcher runs unconditionally and its result,
// success or failure, is the chain's result. Errors from earlier
// launchers are discarded.
func (f FallbackChain) Launch(ctx context.Context, name string, args []string) error {
	if len(f.rest) == 0 {
		return f.head.Launch(ctx, name, args)
	}
	if err := f.head.Launch(ctx, name, args); err == nil {
		return nil
	}
	for _, l := range f.rest[:len(f.rest)-1] {
		if err := l.Launch(ctx, name, args); err == nil {
			return nil
		}
	}
	return f.rest[len(f.rest)-1].Launch(ctx, name, args)
}
