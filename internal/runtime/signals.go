package runtime

import (
	"context"
	"os/signal"
)

// SignalContext returns a context cancelled on the platform's shutdown
// signals. Child processes started with exec.CommandContext are killed when
// it is cancelled.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
