// Package root assembles the spaenv command tree.
package root

import (
	"github.com/dhemric/spaenv/internal/cmd/initcmd"
	"github.com/dhemric/spaenv/internal/cmd/render"
	runcmd "github.com/dhemric/spaenv/internal/cmd/run"
	versioncmd "github.com/dhemric/spaenv/internal/cmd/version"
	"github.com/dhemric/spaenv/internal/cmd/watch"
	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/dhemric/spaenv/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the spaenv CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spaenv",
		Short: "Inject runtime environment values into a built SPA bundle",
		Long: `spaenv rewrites $NAME / ${NAME} placeholders in statically-built
single-page-app bundles with values from the container environment, then
hands control to the static file server.

Quick start:
  spaenv init            # Write a starter spaenv.yaml
  spaenv render          # One rewrite pass
  spaenv run -- nginx -g 'daemon off;'   # Rewrite, then exec the server`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f)
			logger.Debug().
				Str("version", f.Version).
				Bool("debug", f.Debug).
				Msg("spaenv starting")
			return nil
		},
		Version: f.Version,
	}

	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&f.WorkDir, "workdir", "w", "", "Directory containing spaenv.yaml (default: current directory)")

	cmd.SetVersionTemplate(versioncmd.Format(f.Version, f.Commit))

	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(render.NewCmdRender(f, nil))
	cmd.AddCommand(runcmd.NewCmdRun(f, nil))
	cmd.AddCommand(watch.NewCmdWatch(f, nil))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, f.Version, f.Commit))

	return cmd
}

// initializeLogger sets up the logger, adding the rotating file sink when
// spaenv.yaml configures one. Falls back to console-only on any error;
// logging must never be the reason a container fails to start.
func initializeLogger(f *cmdutil.Factory) {
	cfg, err := cmdutil.LoadConfigTolerant(f)
	if err != nil || cfg.Logging.File == "" {
		logger.Init(f.Debug)
		if err != nil {
			logger.Warn().Err(err).Msg("file logging unavailable: failed to load config")
		}
		return
	}

	fileCfg := &logger.FileConfig{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		MaxBackups: cfg.Logging.MaxBackups,
	}
	if err := logger.InitWithFile(f.Debug, fileCfg); err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
