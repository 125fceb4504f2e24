// Package render provides the render command: one materialization pass
// over the target files, without a server handoff.
package render

import (
	"fmt"

	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/dhemric/spaenv/internal/logger"
	"github.com/dhemric/spaenv/internal/materialize"
	"github.com/spf13/cobra"
)

// Options holds options for the render command.
type Options struct {
	Globs    []string
	Allow    []string
	Prefixes []string
	AllEnv   bool
	EnvFiles []string
	Strict   bool
	DryRun   bool
	LockFile string
}

// NewCmdRender creates the render command. runF is injected by tests; nil
// uses the real implementation.
func NewCmdRender(f *cmdutil.Factory, runF func(*Options) error) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "render [flags]",
		Short: "Substitute environment values into the target files",
		Long: `Rewrites $NAME and ${NAME} placeholders in the target files with values
from the environment, atomically, one pass.

Substitution sources must be opted in via --allow, --prefix, or --all-env
(or the allow section of spaenv.yaml). Placeholders whose name has no value
are left verbatim; use --strict to fail instead.`,
		Example: `  # Rewrite the runtime config bundle using two variables
  spaenv render --glob 'dist/runtime-env*.js' --allow ENV --allow BASE_URL

  # Everything prefixed VITE_, report only
  spaenv render --glob 'dist/assets/*.js' --prefix VITE_ --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(opts)
			}
			return run(f, opts)
		},
	}

	AddPassFlags(cmd, opts)
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Compute and report without writing anything")

	return cmd
}

// AddPassFlags registers the flags shared by every command that executes a
// materialization pass.
func AddPassFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringArrayVarP(&opts.Globs, "glob", "g", nil, "Target file glob (repeatable; overrides configured targets)")
	cmd.Flags().StringArrayVarP(&opts.Allow, "allow", "a", nil, "Allow an environment variable by name (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.Prefixes, "prefix", "p", nil, "Allow environment variables by name prefix (repeatable)")
	cmd.Flags().BoolVar(&opts.AllEnv, "all-env", false, "Allow every identifier-shaped environment variable")
	cmd.Flags().StringArrayVar(&opts.EnvFiles, "env-file", nil, "Dotenv file layered under the process environment (repeatable)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when any placeholder stays unresolved")
	cmd.Flags().StringVar(&opts.LockFile, "lock-file", "", "Advisory lock file serializing passes across processes")
}

// Overrides converts command options into the shared override form.
func (o *Options) Overrides() cmdutil.PassOverrides {
	return cmdutil.PassOverrides{
		Globs:    o.Globs,
		Allow:    o.Allow,
		Prefixes: o.Prefixes,
		AllEnv:   o.AllEnv,
		EnvFiles: o.EnvFiles,
		Strict:   o.Strict,
		DryRun:   o.DryRun,
		LockFile: o.LockFile,
	}
}

// Execute resolves the pass from config plus overrides and runs it,
// logging warnings and the summary. Shared with the run and watch
// commands.
func Execute(f *cmdutil.Factory, o cmdutil.PassOverrides) (*materialize.Report, error) {
	passOpts, warnings, err := cmdutil.ResolvePass(f, o)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn().Msg(w)
	}
	if passOpts.Snapshot.Len() == 0 && !passOpts.DryRun {
		logger.Warn().Msg("substitution set is empty; nothing will be replaced (set allow.names, allow.prefixes, or --all-env)")
	}
	return materialize.Run(passOpts)
}

func run(f *cmdutil.Factory, opts *Options) error {
	report, err := Execute(f, opts.Overrides())
	if err != nil {
		return err
	}

	verb := "rewrote"
	if opts.DryRun {
		verb = "would rewrite"
	}
	fmt.Fprintf(f.IOStreams.ErrOut, "%s %d of %d file(s), %d token(s) replaced\n",
		verb, report.FilesChanged, report.FilesScanned, report.TokensReplaced)
	if len(report.Unresolved) > 0 {
		fmt.Fprintf(f.IOStreams.ErrOut, "left verbatim (no value): %v\n", report.Unresolved)
	}
	return nil
}
