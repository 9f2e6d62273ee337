package usecase

//go:generate mockgen -destination=../../tests/mock/usecase/runners_mock.go -package=usecasemock opsboard/internal/usecase TicketRunner,ReportRunner,WebhookFanout

import (
	"context"
	"log/slog"
	"time"

	"opsboard/internal/analytics"
	"opsboard/internal/domain/job"
)

// RunFlags describe how a batch was triggered. Observability only; they never
// change behavior.
type RunFlags struct {
	Debug         bool
	CronExecution bool
	ManualTest    bool
}

// BatchResult is the summary returned to the trigger endpoint and embedded in
// the terminal run-log record.
type BatchResult struct {
	Success         bool
	Executed        int
	Successful      int
	Failed          int
	ExecutionTimeMs int64
	Results         []job.ExecutionResult
	Timestamp       time.Time
	Message         string
}

// nextExecution advances a cron expression past from. A malformed expression
// pauses the job (nil) and is a per-job anomaly, never a batch failure.
func nextExecution(calc ScheduleCalculator, logger *slog.Logger, pipeline, jobName, expr string, from time.Time) *time.Time {
	next, err := calc.Next(expr, from)
	if err != nil {
		logger.Error("failed to advance schedule, job paused",
			"pipeline", pipeline, "job", jobName, "cron", expr, "error", err)
		return nil
	}
	return &next
}

func startDetails(flags RunFlags, now time.Time) map[string]any {
	return map[string]any{
		"timestamp":      now,
		"cron_execution": flags.CronExecution,
		"debug":          flags.Debug,
		"manual_test":    flags.ManualTest,
	}
}

func completedDetails(summary job.BatchSummary) map[string]any {
	return map[string]any{
		"timestamp":         summary.Timestamp,
		"executed":          summary.Executed,
		"successful":        summary.Successful,
		"failed":            summary.Failed,
		"execution_time_ms": summary.ExecutionTimeMs,
		"results":           summary.Results,
	}
}

func recordBatchActivity(ctx context.Context, sink analytics.Sink, pipeline string, summary job.BatchSummary) {
	if sink == nil {
		return
	}
	sink.Record(ctx, analytics.Event{
		Kind:      "batch_completed",
		Pipeline:  pipeline,
		Timestamp: summary.Timestamp,
	})
}
