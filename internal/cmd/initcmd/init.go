// Package initcmd provides the init command, which scaffolds a commented
// spaenv.yaml in the working directory.
package initcmd

import (
	"fmt"

	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/dhemric/spaenv/internal/config"
	"github.com/spf13/cobra"
)

// Options holds options for the init command.
type Options struct {
	Force bool
}

// NewCmdInit creates the init command. runF is injected by tests; nil uses
// the real implementation.
func NewCmdInit(f *cmdutil.Factory, runF func(*Options) error) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:     "init [flags]",
		Short:   "Write a starter spaenv.yaml",
		Example: `  spaenv init`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(opts)
			}
			return run(f, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing spaenv.yaml")

	return cmd
}

func run(f *cmdutil.Factory, opts *Options) error {
	workDir := f.WorkDir
	if workDir == "" {
		workDir = "."
	}
	path, err := config.WriteScaffold(workDir, opts.Force)
	if err != nil {
		return err
	}
	fmt.Fprintf(f.IOStreams.ErrOut, "wrote %s\n", path)
	return nil
}
