package launcher

// DefaultBase is the external binary subcommands fall back to.
const DefaultBase = "git"

// DefaultBlacklist holds names the process launcher must never receive.
// help belongs to the front end itself, as it does in git proper.
var DefaultBlacklist = []string{"help"}

// DefaultChain composes the standard dispatch chain: a blacklisted
// process launcher for base, then the always-succeeding stub.
func DefaultChain(base string) FallbackChain {
	return NewFallbackChain(
		NewBlacklistLauncher(NewProcessLauncher(base), DefaultBlacklist...),
		StubLauncher{},
	)
}
