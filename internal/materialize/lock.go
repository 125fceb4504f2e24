package materialize

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// withFileLock acquires an advisory file lock on path before running fn,
// providing cross-process mutual exclusion when several containers share a
// bundle volume. Lock acquisition failure is a startup failure; waiting
// forever would hide a wedged sibling.
func withFileLock(path string, fn func() error) error {
	fl := flock.New(path)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("acquiring file lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("timed out acquiring file lock %s", path)
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}
