// Package signals provides OS signal utilities. This is a leaf package —
// stdlib only, no internal imports, no logging.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalContext creates a context that's canceled on SIGINT/SIGTERM.
func SetupSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
