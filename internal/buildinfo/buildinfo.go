// Package buildinfo exposes version metadata for the rgit binary. Values
// are overridden at build time via -ldflags; the root cli package
// (cli.Version/cli.Date) is honored as a fallback so external build
// scripts keep working.
package buildinfo

import (
	"strings"

	"github.com/rgit-vcs/rgit/cli"
)

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	// Commit is the VCS commit hash.
	Commit = ""
	// Date is the build time, RFC3339 or similar.
	Date = ""
	// BuiltBy identifies the builder.
	BuiltBy = ""
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = cli.Version
	}
	if v == "" {
		v = "dev"
	}

	d := Date
	if d == "" {
		d = cli.Date
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
