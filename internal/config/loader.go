package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of spaenv configuration.
type Loader struct {
	workDir string
	viper   *viper.Viper
}

// NewLoader creates a configuration loader rooted at workDir.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir: workDir,
		viper:   viper.New(),
	}
}

// Path returns the config file path the loader reads.
func (l *Loader) Path() string {
	return filepath.Join(l.workDir, ConfigFileName)
}

// Load reads and parses spaenv.yaml. SPAENV_* environment variables
// override file values (SPAENV_STRICT=true, SPAENV_SERVE_COMMAND=..., keys
// joined with underscores).
func (l *Loader) Load() (*Config, error) {
	configPath := l.Path()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &ConfigNotFoundError{Path: configPath}
	}

	l.viper.SetConfigFile(configPath)
	l.viper.SetConfigType("yaml")

	defaults := DefaultConfig()
	l.viper.SetDefault("version", defaults.Version)
	l.viper.SetDefault("allow.all", defaults.Allow.All)
	l.viper.SetDefault("strict", false)

	l.viper.SetEnvPrefix("SPAENV")
	l.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.viper.AutomaticEnv()

	if err := l.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Viper lowercases map keys, but env var names are case-sensitive.
	// Re-read the YAML to restore original key casing for the env map.
	if err := l.fixEnvKeyCase(&cfg, configPath); err != nil {
		return nil, fmt.Errorf("failed to parse env section: %w", err)
	}

	return &cfg, nil
}

// fixEnvKeyCase re-reads the YAML to preserve original case for env keys.
func (l *Loader) fixEnvKeyCase(cfg *Config, configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	var raw struct {
		Env map[string]string `yaml:"env"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Env != nil {
		cfg.Env = raw.Env
	}
	return nil
}
