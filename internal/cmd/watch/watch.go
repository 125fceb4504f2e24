// Package watch provides the watch command: a development loop that
// re-runs the materialization pass whenever a target directory changes.
// The pass itself keeps its one-shot semantics; watch just re-invokes it.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhemric/spaenv/internal/cmd/render"
	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/dhemric/spaenv/internal/logger"
	"github.com/dhemric/spaenv/internal/signals"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounce coalesces the event bursts bundlers emit on rebuild.
const debounce = 250 * time.Millisecond

// Options holds options for the watch command.
type Options struct {
	Pass render.Options
}

// NewCmdWatch creates the watch command. runF is injected by tests; nil
// uses the real implementation.
func NewCmdWatch(f *cmdutil.Factory, runF func(*Options) error) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "watch [flags]",
		Short: "Re-render whenever the target files change (development)",
		Long: `Runs an initial materialization pass, then watches the target
directories and re-runs the pass on changes. Intended for local
development against a rebuilding bundler; containers should use run.

Stops on SIGINT/SIGTERM.`,
		Example: `  spaenv watch --glob 'dist/runtime-env*.js' --prefix VITE_`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(opts)
			}
			return run(f, opts)
		},
	}

	render.AddPassFlags(cmd, &opts.Pass)

	return cmd
}

func run(f *cmdutil.Factory, opts *Options) error {
	ctx, cancel := signals.SetupSignalContext(context.Background())
	defer cancel()

	if _, err := render.Execute(f, opts.Pass.Overrides()); err != nil {
		return err
	}

	dirs, err := watchDirs(f, opts)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
		logger.Debug().Str("dir", dir).Msg("watching")
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Our own atomic rename shows up as Create on the target;
			// re-rendering an already-rendered file is a no-op, so a
			// spurious wakeup is harmless.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				schedule()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		case <-pending:
			if _, err := render.Execute(f, opts.Pass.Overrides()); err != nil {
				return err
			}
		}
	}
}

// watchDirs returns the parent directories of the resolved target globs.
func watchDirs(f *cmdutil.Factory, opts *Options) ([]string, error) {
	passOpts, _, err := cmdutil.ResolvePass(f, opts.Pass.Overrides())
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	var dirs []string
	add := func(dir string) {
		if _, ok := seen[dir]; ok {
			return
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	for _, g := range passOpts.Globs {
		dir := filepath.Dir(g)
		if strings.ContainsAny(dir, "*?[") {
			matches, err := filepath.Glob(dir)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
			continue
		}
		add(dir)
	}
	return dirs, nil
}
