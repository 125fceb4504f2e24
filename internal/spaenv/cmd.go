package spaenv

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhemric/spaenv/internal/cmd/factory"
	"github.com/dhemric/spaenv/internal/cmd/root"
	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/dhemric/spaenv/internal/logger"
)

// Build-time variables injected via ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// Main is the entry point for the spaenv CLI. It initializes the Factory,
// creates the root command, and executes it. The returned code is the
// process exit status; non-zero here is what keeps a failed
// materialization from ever starting the file server.
func Main() int {
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)

	rootCmd := root.NewCmdRoot(f)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		var exitErr *cmdutil.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		if errors.Is(err, cmdutil.SilentError) {
			return 1
		}
		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
			return 2
		}
		return 1
	}

	return 0
}
