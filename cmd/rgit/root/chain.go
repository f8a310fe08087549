package root

import (
	"errors"

	"github.com/rgit-vcs/rgit/internal/alias"
	"github.com/rgit-vcs/rgit/internal/config"
	"github.com/rgit-vcs/rgit/internal/launcher"
	"github.com/rgit-vcs/rgit/internal/native"
	"github.com/rgit-vcs/rgit/internal/script"
)

var errMissingConfigValue = errors.New("missing value for flag: --config")

// buildChain assembles the launcher chain, from a config file when one is
// given and from built-in defaults otherwise.
func buildChain(cfgPath string) (launcher.Launcher, error) {
	if cfgPath == "" {
		return launcher.DefaultChain(launcher.DefaultBase), nil
	}
	cfg, err := config.Parse(cfgPath)
	if err != nil {
		return nil, err
	}
	return chainFromConfig(cfg)
}

// chainFromConfig composes, in order: the native command table when
// enabled, the blacklisted process launcher, script commands when a
// directory is configured, and the terminal stub unless disabled. Aliases
// wrap the whole chain so expansion applies on every path.
func chainFromConfig(cfg config.Config) (launcher.Launcher, error) {
	elems := make([]launcher.Launcher, 0, 4)
	if cfg.Native {
		elems = append(elems, native.Launcher{})
	}
	elems = append(elems, launcher.NewBlacklistLauncher(
		launcher.NewProcessLauncher(cfg.BaseCommand), cfg.Blacklist...))
	if cfg.ScriptDir != "" {
		elems = append(elems, script.NewLauncher(cfg.ScriptDir))
	}
	if cfg.StubFallback {
		elems = append(elems, launcher.StubLauncher{})
	}

	var chain launcher.Launcher = launcher.NewFallbackChain(elems[0], elems[1:]...)
	if cfg.AliasFile != "" {
		aliases, err := alias.Load(cfg.AliasFile)
		if err != nil {
			return nil, err
		}
		chain = alias.NewLauncher(chain, aliases)
	}
	return chain, nil
}
