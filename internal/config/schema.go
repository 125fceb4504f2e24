// Package config provides loading and parsing of the spaenv.yaml
// configuration file. Configuration precedence across the CLI is
// flags > SPAENV_* environment overrides > file > defaults; this package
// covers the last three.
package config

import "github.com/dhemric/spaenv/internal/env"

// ConfigFileName is the default configuration file name.
const ConfigFileName = "spaenv.yaml"

// Config is the parsed spaenv.yaml.
type Config struct {
	// Version is the config schema version.
	Version int `mapstructure:"version"`

	// Targets are the globs selecting the bundle files to rewrite.
	Targets []string `mapstructure:"targets"`

	// Allow restricts which process-environment variables may be
	// substituted into targets.
	Allow AllowConfig `mapstructure:"allow"`

	// EnvFile lists dotenv files layered under the process environment.
	EnvFile []string `mapstructure:"env_file"`

	// Env holds static overrides with the highest precedence.
	Env map[string]string `mapstructure:"env"`

	// Serve configures the process handoff.
	Serve ServeConfig `mapstructure:"serve"`

	// Strict fails startup when allow-listed placeholders stay unresolved.
	Strict bool `mapstructure:"strict"`

	// LockFile serializes passes across processes sharing a volume.
	LockFile string `mapstructure:"lock_file"`

	// Logging configures the optional file sink.
	Logging LoggingConfig `mapstructure:"logging"`
}

// AllowConfig mirrors env.Filter in config form.
type AllowConfig struct {
	Names    []string `mapstructure:"names"`
	Prefixes []string `mapstructure:"prefixes"`
	All      bool     `mapstructure:"all"`
}

// Filter converts the allow section into an env.Filter.
func (a AllowConfig) Filter() env.Filter {
	return env.Filter{Names: a.Names, Prefixes: a.Prefixes, All: a.All}
}

// ServeConfig configures the server handoff.
type ServeConfig struct {
	// Command is the server command line, shell-word parsed
	// (e.g. "nginx -g 'daemon off;'").
	Command string `mapstructure:"command"`
}

// LoggingConfig configures the optional rotating log file.
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
}
