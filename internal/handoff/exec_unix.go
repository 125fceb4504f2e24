//go:build !windows

package handoff

import "syscall"

// Exec replaces the current process image with the server command. On
// success it never returns: the server takes over the PID and the given
// environment. Any returned error means the server was never started.
func (c *Command) Exec(environ []string) error {
	return syscall.Exec(c.Path, c.Args, environ)
}
