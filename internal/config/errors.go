package config

import "fmt"

// ConfigNotFoundError indicates no spaenv.yaml exists at the expected path.
// Commands that can run fully from flags treat this as "use defaults".
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}
