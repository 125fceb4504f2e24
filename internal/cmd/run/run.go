// Package run provides the run command: one materialization pass followed
// by the server handoff. This is the intended container entrypoint.
package run

import (
	"errors"
	"os/exec"

	"github.com/dhemric/spaenv/internal/cmd/render"
	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/dhemric/spaenv/internal/handoff"
	"github.com/dhemric/spaenv/internal/logger"
	"github.com/spf13/cobra"
)

// Options holds options for the run command.
type Options struct {
	Pass render.Options

	// ServeArgs is the server argv given after "--". Takes precedence over
	// serve.command from spaenv.yaml.
	ServeArgs []string
}

// NewCmdRun creates the run command. runF is injected by tests; nil uses
// the real implementation.
func NewCmdRun(f *cmdutil.Factory, runF func(*Options) error) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "run [flags] [-- COMMAND [ARG...]]",
		Short: "Render the target files, then hand off to the file server",
		Long: `Runs one materialization pass and then replaces this process with the
static file server, which inherits the environment and starts listening
only after the rewrite completes. If the pass fails, the server is never
started and the container exits non-zero.

The server command comes from the arguments after "--", or from
serve.command in spaenv.yaml.`,
		Example: `  # Typical Dockerfile entrypoint
  spaenv run --glob '/usr/share/nginx/html/runtime-env*.js' --allow ENV --allow BASE_URL -- nginx -g 'daemon off;'

  # Server command from spaenv.yaml
  spaenv run`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.ServeArgs = args
			}
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
	// Resolve the server command before touching any file: a missing
	// binary should fail fast, not after a half-useful rewrite.
	cmd, err := resolveServeCommand(f, opts)
	if err != nil {
		return err
	}

	report, err := render.Execute(f, opts.Pass.Overrides())
	if err != nil {
		return err
	}

	logger.Info().
		Str("run_id", report.RunID).
		Str("server", cmd.Path).
		Msg("handing off to file server")
	_ = logger.CloseFileWriter()

	// On Unix this replaces the process image and never returns. On
	// Windows it supervises a child; mirror the child's exit code.
	if err := cmd.Exec(f.Environ()); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &cmdutil.ExitError{Code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}

func resolveServeCommand(f *cmdutil.Factory, opts *Options) (*handoff.Command, error) {
	if len(opts.ServeArgs) > 0 {
		return handoff.FromArgs(opts.ServeArgs)
	}

	cfg, err := cmdutil.LoadConfigTolerant(f)
	if err != nil {
		return nil, err
	}
	if cfg.Serve.Command == "" {
		return nil, cmdutil.FlagErrorf("no server command: pass one after \"--\" or set serve.command in spaenv.yaml")
	}
	return handoff.Parse(cfg.Serve.Command)
}
