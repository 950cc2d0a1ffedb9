package srv

import (
	"context"
	"errors"

	"github.com/sandevgo/serialsh/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices runs every service in its own goroutine. When any of them
// returns, cancel is called so the rest of the process winds down with it.
func StartServices(ctx context.Context, cancel context.CancelFunc, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			defer cancel()
			err := service.Start(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msgf("%T stopped with error", service)
				return
			}
			logger.Debug().Msgf("%T stopped", service)
		}(service)
	}
}

// ShutdownServices waits for ctx to end, then shuts services down in reverse
// order of registration.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
