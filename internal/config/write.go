package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// scaffoldTemplate is the commented spaenv.yaml written by `spaenv init`.
const scaffoldTemplate = `# spaenv configuration
version: 1

# Globs selecting the built bundle files to rewrite at container start.
targets:
  - dist/runtime-env*.js

# Which process environment variables may be substituted into targets.
# Permits nothing until names, prefixes, or all are set.
allow:
  names: []
  prefixes: []
  # all: true substitutes every identifier-shaped variable. Avoid for
  # publicly served bundles: it can leak unrelated secrets.
  all: false

# Dotenv files layered under the process environment (lowest precedence).
env_file: []

# Static overrides (highest precedence).
env: {}

# Server handoff after a successful pass.
serve:
  command: ""

# Fail startup when allow-listed placeholders stay unresolved.
strict: false
`

// WriteScaffold writes the commented default config to workDir. Refuses to
// overwrite an existing file unless force is set. The write is atomic
// (temp file + rename) like every other file this tool touches; the small
// temp+rename dance is duplicated here to keep config free of materialize
// imports.
func WriteScaffold(workDir string, force bool) (string, error) {
	path := filepath.Join(workDir, ConfigFileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config file already exists: %s", path)
		}
	}

	tmp, err := os.CreateTemp(workDir, ".spaenv-*.tmp")
	if err != nil {
		return path, fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.WriteString(scaffoldTemplate); err != nil {
		_ = tmp.Close()
		return path, fmt.Errorf("writing temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return path, fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return path, fmt.Errorf("setting permissions on temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return path, fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return path, nil
}
