package launcher

import "context"

// BlacklistLauncher wraps another launcher and refuses a fixed set of
// subcommand names before any delegation happens.
type BlacklistLauncher struct {
	next      Launcher
	forbidden map[string]struct{}
}

// NewBlacklistLauncher wraps next with a blacklist of forbidden names.
func NewBlacklistLauncher(next Launcher, names ...string) BlacklistLauncher {
	forbidden := make(map[string]struct{}, len(names))
	for _, n := range names {
		forbidden[n] = struct{}{}
	}
	return BlacklistLauncher{next: next, forbidden: forbidden}
}

// Launch returns BlacklistedError when name is forbidden, without
// invoking the wrapped launcher. Matching is exact and case-sensitive.
// Otherwise the wrapped launcher's result is returned unchanged.
func (b BlacklistLauncher) Launch(ctx context.Context, name string, args []string) error {
	if _, ok := b.forbidden[name]; ok {
		return BlacklistedError{Name: name}
	}
	return b.next.Launch(ctx, name, args)
}
