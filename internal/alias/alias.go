// Package alias expands user-defined subcommand aliases before dispatch,
// mirroring git's alias feature. Aliases live in a yaml file of the form:
//
//	aliases:
//	  st: [status, --short]
//	  co: [checkout]
package alias

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgit-vcs/rgit/internal/launcher"
)

// Aliases maps an alias name to the argv prefix that replaces it.
type Aliases map[string][]string

type aliasFile struct {
	Aliases map[string][]string `yaml:"aliases"`
}

// Load reads and validates an alias file.
func Load(path string) (Aliases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}
	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid alias file: %w", err)
	}
	for name, words := range f.Aliases {
		if name == "" {
			return nil, fmt.Errorf("invalid alias file: empty alias name")
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("invalid alias file: alias %q has an empty expansion", name)
		}
	}
	return f.Aliases, nil
}

// Launcher rewrites aliased names before delegating. Expansion is a
// single step: the replacement is not itself alias-expanded.
type Launcher struct {
	next    launcher.Launcher
	aliases Aliases
}

// NewLauncher wraps next with the given aliases.
func NewLauncher(next launcher.Launcher, aliases Aliases) Launcher {
	return Launcher{next: next, aliases: aliases}
}

// Launch substitutes name with its expansion, appending the caller's
// arguments after the expansion's own. Non-aliases pass through verbatim.
func (l Launcher) Launch(ctx context.Context, name string, args []string) error {
	words, ok := l.aliases[name]
	if !ok {
		return l.next.Launch(ctx, name, args)
	}
	expanded := make([]string, 0, len(words)-1+len(args))
	expanded = append(expanded, words[1:]...)
	expanded = append(expanded, args...)
	return l.next.Launch(ctx, words[0], expanded)
}
