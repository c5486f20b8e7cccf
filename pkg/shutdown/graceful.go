package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/jobpulse/jobpulse/pkg/logging"
)

// Stoppable is anything that can wind down within a deadline.
type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until one of the signals arrives, then shuts the
// components down in order under a shared timeout.
func Graceful(signals []os.Signal, timeout time.Duration, log *logging.Logger, components ...Stoppable) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, c := range components {
		if err := c.Shutdown(ctx); err != nil {
			log.Warn("component shutdown completed with error", "err", err)
		}
	}
	log.Info("graceful shutdown completed")
}
