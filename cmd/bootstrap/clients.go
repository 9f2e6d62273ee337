package bootstrap

import (
	"log/slog"

	"opsboard/internal/client/evolution"
	"opsboard/internal/client/glpi"
	"opsboard/internal/pkg/config"
	"opsboard/internal/usecase"

	"go.uber.org/fx"
)

var ClientsModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			NewGLPIClient,
			fx.As(new(usecase.TicketCreator)),
		),
		fx.Annotate(
			NewEvolutionClient,
			fx.As(new(usecase.MessageSender)),
		),
	),
)

func NewGLPIClient(cfg config.Config, logger *slog.Logger) *glpi.Client {
	return glpi.NewClient(cfg.Clients.HTTPTimeout, logger)
}

func NewEvolutionClient(cfg config.Config, logger *slog.Logger) *evolution.Client {
	return evolution.NewClient(cfg.Clients.HTTPTimeout, logger)
}
