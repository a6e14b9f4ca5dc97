package srv

import (
	"context"
	"errors"
	"time"

	"github.com/sandevgo/tuskshell/pkg/log"
)

const shutdownTimeout = 5 * time.Second

type Service interface {
	// Start blocks until the service is done or ctx is cancelled.
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and waits until the first one returns or ctx
// is done. All services are then shut down in reverse order. The error of
// the service that stopped first is returned; cancellation is not an error.
func Run(ctx context.Context, services ...Service) error {
	logger := log.FromCtx(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			err := service.Start(runCtx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msgf("%T stopped with error", service)
			}
			done <- err
		}(service)
	}

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer stop()
	ShutdownServices(shutdownCtx, services)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// ShutdownServices stops services in reverse start order.
func ShutdownServices(ctx context.Context, services []Service) {
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
