// Package handoff transfers control to the static file server once the
// materialization pass has completed. The server inherits the current
// environment and only starts listening after the rewrite. The ordering is
// enforced by the process model, not by timing.
package handoff

import (
	"os/exec"

	"github.com/dhemric/spaenv/internal/materialize"
	"github.com/google/shlex"
)

// Command is a resolved server command ready to exec.
type Command struct {
	// Path is the absolute binary path after PATH resolution.
	Path string
	// Args is the full argv, including the program name at Args[0].
	Args []string
}

// Parse splits a command string using shell word rules and resolves the
// binary on PATH. Quoting works the way operators expect from a Dockerfile
// CMD, e.g. `nginx -g 'daemon off;'`.
func Parse(cmdline string) (*Command, error) {
	argv, err := shlex.Split(cmdline)
	if err != nil {
		return nil, materialize.ConfigErrorf("parsing server command %q: %v", cmdline, err)
	}
	return FromArgs(argv)
}

// FromArgs resolves an argv slice into a Command.
func FromArgs(argv []string) (*Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, materialize.ConfigErrorf("no server command configured")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, materialize.ConfigErrorf("server command %q: %v", argv[0], err)
	}
	return &Command{Path: path, Args: argv}, nil
}
