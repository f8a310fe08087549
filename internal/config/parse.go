package config

import "cuelang.org/go/cue"

// applyLauncherFields probes the optional launcher settings and applies
// any that are present over the defaults already in cfg.
func applyLauncherFields(v cue.Value, cfg *Config) {
	if s, ok := stringField(v, "baseCommand"); ok {
		cfg.BaseCommand = s
	}
	bv := v.LookupPath(cue.ParsePath("blacklist"))
	if bv.Exists() && bv.Kind() == cue.ListKind {
		var names []string
		if err := bv.Decode(&names); err == nil {
			cfg.Blacklist = names
		}
	}
	nv := v.LookupPath(cue.ParsePath("native"))
	if nv.Exists() && nv.Kind() == cue.BoolKind {
		_ = nv.Decode(&cfg.Native)
	}
	if s, ok := stringField(v, "aliasFile"); ok {
		cfg.AliasFile = s
	}
	if s, ok := stringField(v, "scriptDir"); ok {
		cfg.ScriptDir = s
	}
	sv := v.LookupPath(cue.ParsePath("stubFallback"))
	if sv.Exists() && sv.Kind() == cue.BoolKind {
		_ = sv.Decode(&cfg.StubFallback)
	}
}
