package components

import (
	"opsboard/internal/domain/schedule"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/usecase"
	"opsboard/internal/usecase/commands"
	"opsboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseRunnersModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(calc *schedule.Calculator) usecase.ScheduleCalculator { return calc },
	func(calc *schedule.Calculator) commands.ScheduleCalculator { return calc },
)

var usecaseRunnersModule = fx.Module("usecase/runners",
	fx.Provide(
		usecase.NewTicketRunner,
		usecase.NewReportRunner,
		usecase.NewWebhookFanout,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTicketCommands,
		commands.NewReportCommands,
		commands.NewSubscriptionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTicketQueries,
		queries.NewReportQueries,
		queries.NewSubscriptionQueries,
		queries.NewRunLogQueries,
	),
)
