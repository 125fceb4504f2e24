package cmdutil

import (
	"errors"

	"github.com/dhemric/spaenv/internal/config"
	"github.com/dhemric/spaenv/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands. It is a dependency
// injection container: the struct defines what dependencies exist, while
// internal/cmd/factory wires the real implementations. Commands extract
// only the fields they need.
type Factory struct {
	// WorkDir is where spaenv.yaml is looked up (set by the --workdir flag).
	WorkDir string
	Debug   bool

	// Version info (set at build time via ldflags).
	Version string
	Commit  string

	// IOStreams for input/output (for testability).
	IOStreams *iostreams.IOStreams

	// Environ returns the process environment captured at startup.
	Environ func() []string

	// Dependency providers (closures wired by the factory constructor).
	ConfigLoader func() *config.Loader
	Config       func() (*config.Config, error)
}

// LoadConfigTolerant returns the loaded config, or the built-in defaults
// when no config file exists. Commands that can run fully from flags use
// this; a malformed file is still an error.
func LoadConfigTolerant(f *Factory) (*config.Config, error) {
	cfg, err := f.Config()
	if err != nil {
		var notFound *config.ConfigNotFoundError
		if errors.As(err, &notFound) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
