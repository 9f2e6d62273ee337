package components

import (
	repo_impl "opsboard/internal/infra/repository"
	"opsboard/internal/usecase"
	"opsboard/internal/usecase/commands"
	"opsboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDB,
		fx.Annotate(
			repo_impl.NewScheduledTicketRepository,
			fx.As(new(usecase.TicketJobStore)),
			fx.As(new(commands.TicketWriteRepo)),
			fx.As(new(queries.TicketViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewScheduledReportRepository,
			fx.As(new(usecase.ReportJobStore)),
			fx.As(new(commands.ReportWriteRepo)),
			fx.As(new(queries.ReportViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewSubscriptionRepository,
			fx.As(new(usecase.SubscriptionStore)),
			fx.As(new(commands.SubscriptionWriteRepo)),
			fx.As(new(queries.SubscriptionViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewRunLogRepository,
			fx.As(new(usecase.RunLogStore)),
			fx.As(new(queries.RunLogViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewIntegrationRepository,
			fx.As(new(usecase.CredentialStore)),
		),
	),
)

func NewDB(pool *pgxpool.Pool) repo_impl.DB {
	return pool
}
