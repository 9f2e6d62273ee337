package bootstrap

import (
	"opsboard/internal/domain/schedule"
	"opsboard/internal/pkg/config"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewScheduleCalculator,
	),
)

func NewScheduleCalculator(cfg config.Config) (*schedule.Calculator, error) {
	return schedule.NewCalculator(cfg.Schedule.TimeZone)
}
