// Package factory wires the real implementations behind cmdutil.Factory.
package factory

import (
	"os"
	"sync"

	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/dhemric/spaenv/internal/config"
	"github.com/dhemric/spaenv/internal/iostreams"
)

// New creates a fully-wired Factory with lazy-initialized dependency
// closures. Called exactly once at the CLI entry point. Tests should NOT
// import this package — construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: iostreams.System(),
	}

	// The environment is captured once, here, so every later consumer sees
	// the same snapshot regardless of what a pass or handoff does.
	environ := os.Environ()
	f.Environ = func() []string { return environ }

	var (
		loaderOnce sync.Once
		loader     *config.Loader
	)
	f.ConfigLoader = func() *config.Loader {
		loaderOnce.Do(func() {
			workDir := f.WorkDir
			if workDir == "" {
				workDir, _ = os.Getwd()
			}
			loader = config.NewLoader(workDir)
		})
		return loader
	}

	var (
		configOnce sync.Once
		configData *config.Config
		configErr  error
	)
	f.Config = func() (*config.Config, error) {
		configOnce.Do(func() {
			configData, configErr = f.ConfigLoader().Load()
		})
		return configData, configErr
	}

	return f
}
