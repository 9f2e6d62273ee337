package bootstrap

import (
	"opsboard/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	ScheduleModule,
	ClientsModule,
	ObservabilityModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
