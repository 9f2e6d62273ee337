package bootstrap

import (
	"context"
	"log/slog"

	"opsboard/internal/analytics"
	"opsboard/internal/handler/api"
	"opsboard/internal/metrics"
	"opsboard/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		NewMetricsSink,
		fx.Annotate(
			NewAnalyticsSink,
			fx.As(new(analytics.Sink)),
			fx.As(new(api.ActivityReader)),
		),
	),
)

func NewMetricsSink() metrics.Sink {
	return metrics.NewPrometheusSink(prometheus.DefaultRegisterer)
}

// NewAnalyticsSink wires the optional Redis activity feed. An empty address
// disables it; the nil sink is safe to call.
func NewAnalyticsSink(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *analytics.RedisSink {
	if cfg.Analytics.RedisAddr == "" {
		logger.Info("analytics feed disabled")
		return analytics.NewRedisSink(nil, logger, 0, 0)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Analytics.RedisAddr,
		Password: cfg.Analytics.RedisPassword,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return analytics.NewRedisSink(client, logger, cfg.Analytics.FeedMaxLen, cfg.Analytics.FeedTTL)
}
