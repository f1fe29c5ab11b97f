package components

import (
	"context"

	"spot-booking/internal/handler"
	"spot-booking/internal/handler/api"
	"spot-booking/internal/handler/middleware"
	"spot-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.ActorRateLimiter {
	rl := middleware.NewActorRateLimiter(cfg.RateLimit)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			rl.Stop()
			return nil
		},
	})
	return rl
}
