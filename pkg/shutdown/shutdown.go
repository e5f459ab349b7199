package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// DefaultTimeout bounds how long servers get to drain in-flight requests.
const DefaultTimeout = 10 * time.Second

func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case <-ch:
			cancel()
		}
	}()

	return ctx, cancel
}

// Graceful runs stop and falls back to force when it has not returned within timeout.
// It reports whether the stop finished in time.
func Graceful(timeout time.Duration, stop, force func()) bool {
	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return true
	case <-stopCtx.Done():
		force()
		return false
	}
}
