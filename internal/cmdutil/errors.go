package cmdutil

import (
	"errors"
	"fmt"
)

// ExitError carries a specific process exit code up to Main. Commands
// return this instead of calling os.Exit() directly, so deferred cleanup
// still runs; on the run command it also mirrors a handed-off server's
// exit status on platforms without exec.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// FlagError indicates bad flags or arguments. Main prints the error
// followed by the command's usage string when it sees this type.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf creates a FlagError with a formatted message.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// SilentError signals that the error has already been displayed to the
// user. Main exits non-zero without printing anything additional.
var SilentError = errors.New("SilentError")
