package config

// DefaultConfig returns the built-in defaults. Note the allow section
// defaults to permitting nothing: substitution sources must be opted in.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Targets: nil,
		Allow:   AllowConfig{},
		Env:     map[string]string{},
	}
}
