package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// WithShutdown returns a context that is cancelled on the first signal
// received on shutdown. If shutdown is nil, a channel registered for
// SIGINT and SIGTERM is used.
func WithShutdown(parent context.Context, shutdown chan os.Signal, log logrus.FieldLogger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	notified := false
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		notified = true
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case sig := <-shutdown:
			log.WithField("signal", sig.String()).Warn("received signal, cancelling")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		cancel()
		<-done
		if notified {
			signal.Stop(shutdown)
		}
	}
}
