package materialize

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigError indicates invalid pass parameters (empty or malformed glob,
// bad options), detected before any file I/O. Non-retryable: the container
// configuration has to change.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

// ConfigErrorf creates a ConfigError with a formatted message.
func ConfigErrorf(format string, args ...any) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// IOError wraps a read, write, or rename failure on a matched file. Fatal:
// the pass aborts at the first IOError rather than skipping the file, since
// a partially-configured bundle is worse than a failed container start.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// UnresolvedError is returned in strict mode when placeholders referenced
// names that had no value in the snapshot. In the default (non-strict) mode
// those placeholders are left verbatim and this error is never produced.
type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	names := make([]string, len(e.Names))
	copy(names, e.Names)
	sort.Strings(names)
	return fmt.Sprintf("unresolved placeholders: %s", strings.Join(names, ", "))
}
