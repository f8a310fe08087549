package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Config holds the launcher chain settings read from a CUE file.
type Config struct {
	ConfigVersion string
	// BaseCommand is the external binary subcommands are handed to.
	BaseCommand string
	// Blacklist holds names the process launcher refuses.
	Blacklist []string
	// Native enables the in-process command table ahead of the process
	// launcher.
	Native bool
	// AliasFile points at a yaml alias file; empty disables aliases.
	AliasFile string
	// ScriptDir points at a directory of lua script commands; empty
	// disables script dispatch.
	ScriptDir string
	// StubFallback keeps the always-succeeding stub as the chain's
	// terminal element.
	StubFallback bool
}

// Default returns the built-in configuration, equivalent to running with
// no config file at all.
func Default() Config {
	return Config{
		BaseCommand:  "git",
		Blacklist:    []string{"help"},
		StubFallback: true,
	}
}

// Parse loads a CUE config file, validates the required fields and
// returns the settings merged over the defaults.
func Parse(path string) (Config, error) {
	if filepath.Ext(path) != ".cue" {
		return Config{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %v", err)
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.ConfigVersion, _ = stringField(v, "configVersion")
	applyLauncherFields(v, &cfg)
	if cfg.BaseCommand == "" {
		return Config{}, errors.New("invalid config: baseCommand must not be empty")
	}
	return cfg, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

func stringField(v cue.Value, name string) (string, bool) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() || f.Kind() != cue.StringKind {
		return "", false
	}
	var s string
	if err := f.Decode(&s); err != nil {
		return "", false
	}
	return s, true
}
