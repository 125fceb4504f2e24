//go:build windows

package handoff

import (
	"os"
	"os/exec"
	"os/signal"
)

// Exec runs the server command as a child process with stdio passthrough.
// Windows has no execve, so the closest equivalent is supervising the child
// and mirroring its exit: signals are forwarded and the child's exit code
// is propagated through the returned *exec.ExitError.
func (c *Command) Exec(environ []string) error {
	cmd := exec.Command(c.Path, c.Args[1:]...)
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigChan:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)
	signal.Stop(sigChan)
	return err
}
