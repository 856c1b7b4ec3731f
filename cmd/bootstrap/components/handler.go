package components

import (
	"rehearsal-rooms/internal/handler"
	"rehearsal-rooms/internal/handler/api"
	"rehearsal-rooms/internal/handler/middleware"
	"rehearsal-rooms/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewCampusHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.WriteRateLimiter {
			return middleware.NewWriteRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
