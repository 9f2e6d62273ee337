package components

import (
	"opsboard/internal/handler"
	"opsboard/internal/handler/api"
	"opsboard/internal/handler/middleware"
	"opsboard/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRunsHandler,
		api.NewWebhookHandler,
		api.NewTicketsHandler,
		api.NewReportsHandler,
		api.NewSubscriptionsHandler,
		api.NewRunLogsHandler,
		api.NewActivityHandler,
		NewTokenMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewTokenMiddleware(cfg config.Config) *middleware.TokenMiddleware {
	return middleware.NewTokenMiddleware(cfg.Trigger)
}
