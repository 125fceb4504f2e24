package cmdutil

import (
	"github.com/dhemric/spaenv/internal/env"
	"github.com/dhemric/spaenv/internal/materialize"
)

// PassOverrides are flag-level overrides applied on top of the config file
// when assembling a materialization pass. Zero values defer to the config.
type PassOverrides struct {
	Globs    []string
	Allow    []string
	Prefixes []string
	AllEnv   bool
	EnvFiles []string
	Strict   bool
	DryRun   bool
	LockFile string
}

// ResolvePass merges the loaded config with flag overrides, builds the
// Environment Snapshot, and returns ready-to-run pass options plus any
// snapshot warnings (allow-listed names with no value). Flags beat the
// file: globs given on the command line replace the configured targets,
// while allow names, prefixes, and env files are additive.
func ResolvePass(f *Factory, o PassOverrides) (materialize.Options, []string, error) {
	cfg, err := LoadConfigTolerant(f)
	if err != nil {
		return materialize.Options{}, nil, err
	}

	globs := cfg.Targets
	if len(o.Globs) > 0 {
		globs = o.Globs
	}

	filter := cfg.Allow.Filter()
	filter.Names = append(filter.Names, o.Allow...)
	filter.Prefixes = append(filter.Prefixes, o.Prefixes...)
	if o.AllEnv {
		filter.All = true
	}

	envFiles := append(append([]string{}, cfg.EnvFile...), o.EnvFiles...)

	lockFile := cfg.LockFile
	if o.LockFile != "" {
		lockFile = o.LockFile
	}

	snapshot, warnings, err := env.Resolve(f.Environ(), envFiles, cfg.Env, filter)
	if err != nil {
		return materialize.Options{}, nil, err
	}

	return materialize.Options{
		Globs:    globs,
		Snapshot: snapshot,
		Strict:   cfg.Strict || o.Strict,
		DryRun:   o.DryRun,
		LockFile: lockFile,
	}, warnings, nil
}
