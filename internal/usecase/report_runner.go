package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"opsboard/internal/analytics"
	"opsboard/internal/client/evolution"
	"opsboard/internal/domain/integration"
	"opsboard/internal/domain/job"
	"opsboard/internal/infra"
	"opsboard/internal/metrics"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/pkg/errs"
)

const evolutionNotConfigured = "Integração Evolution não configurada"

// ReportRunner executes one batch of due scheduled reports.
type ReportRunner interface {
	Run(ctx context.Context, flags RunFlags) (*BatchResult, error)
}

type reportRunnerImpl struct {
	reports ReportJobStore
	creds   CredentialStore
	sender  MessageSender
	calc    ScheduleCalculator
	runLogs RunLogStore
	clock   clock.Clock
	logger  *slog.Logger
	metrics metrics.Sink
	feed    analytics.Sink
}

func NewReportRunner(
	reports ReportJobStore,
	creds CredentialStore,
	sender MessageSender,
	calc ScheduleCalculator,
	runLogs RunLogStore,
	clk clock.Clock,
	logger *slog.Logger,
	sink metrics.Sink,
	feed analytics.Sink,
) ReportRunner {
	return &reportRunnerImpl{
		reports: reports,
		creds:   creds,
		sender:  sender,
		calc:    calc,
		runLogs: runLogs,
		clock:   clk,
		logger:  logger,
		metrics: sink,
		feed:    feed,
	}
}

func (uc *reportRunnerImpl) Run(ctx context.Context, flags RunFlags) (*BatchResult, error) {
	now := uc.clock.Now()

	if err := uc.runLogs.Insert(ctx, job.PipelineScheduledReports, job.RunStarted, startDetails(flags, now)); err != nil {
		return nil, uc.critical(ctx, err)
	}

	due, err := uc.reports.FindDue(ctx, now)
	if err != nil {
		return nil, uc.critical(ctx, err)
	}

	results := make([]job.ExecutionResult, 0, len(due))
	successful := 0
	for _, rep := range due {
		res := uc.executeOne(ctx, rep)

		next := nextExecution(uc.calc, uc.logger, job.PipelineScheduledReports, rep.Name, rep.CronExpression, now)
		if aerr := uc.reports.Advance(ctx, rep.ID, now, next); aerr != nil {
			uc.logger.Error("failed to persist schedule advancement",
				"job", rep.Name, "error", aerr)
		}
		res.NextExecution = next

		uc.metrics.JobAttempt(job.PipelineScheduledReports, res.Success)
		if res.Success {
			successful++
		}
		results = append(results, res)
	}

	elapsed := uc.clock.Now().Sub(now)
	summary := job.BatchSummary{
		Timestamp:       now,
		Executed:        len(due),
		Successful:      successful,
		Failed:          len(due) - successful,
		ExecutionTimeMs: elapsed.Milliseconds(),
		Results:         results,
	}

	if err := uc.runLogs.Insert(ctx, job.PipelineScheduledReports, job.RunCompleted, completedDetails(summary)); err != nil {
		return nil, uc.critical(ctx, err)
	}

	uc.metrics.BatchCompleted(job.PipelineScheduledReports, summary.Successful, summary.Failed, elapsed)
	recordBatchActivity(ctx, uc.feed, job.PipelineScheduledReports, summary)

	return &BatchResult{
		Success:         true,
		Executed:        summary.Executed,
		Successful:      summary.Successful,
		Failed:          summary.Failed,
		ExecutionTimeMs: summary.ExecutionTimeMs,
		Results:         results,
		Timestamp:       now,
		Message:         "Processamento de relatórios agendados concluído",
	}, nil
}

func (uc *reportRunnerImpl) executeOne(ctx context.Context, rep *job.ScheduledReport) job.ExecutionResult {
	res := job.ExecutionResult{JobID: rep.ID, JobName: rep.Name}

	cred, err := uc.creds.FindActive(ctx, rep.OwnerID, integration.KindEvolution)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			res.Error = evolutionNotConfigured
		} else {
			res.Error = errs.Wrap(err, "failed to resolve Evolution credentials").Error()
		}
		uc.logger.Warn("scheduled report skipped", "job", rep.Name, "error", res.Error)
		return res
	}

	msg := evolution.Message{
		Number: rep.PhoneNumber,
		Text:   buildReportText(rep),
	}
	if err := uc.sender.SendText(ctx, *cred, msg); err != nil {
		res.Error = err.Error()
		uc.logger.Warn("scheduled report failed", "job", rep.Name, "error", err)
		return res
	}

	res.Success = true
	uc.logger.Info("scheduled report sent", "job", rep.Name, "number", rep.PhoneNumber)
	return res
}

func (uc *reportRunnerImpl) critical(ctx context.Context, err error) error {
	uc.logger.Error("scheduled report batch aborted", "error", err)
	uc.metrics.BatchCritical(job.PipelineScheduledReports)
	_ = uc.runLogs.Insert(ctx, job.PipelineScheduledReports, job.RunCriticalError, map[string]any{
		"timestamp": uc.clock.Now(),
		"error":     err.Error(),
	})
	return err
}

// buildReportText renders the WhatsApp report body from the job settings.
func buildReportText(rep *job.ScheduledReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Relatório: %s\n", rep.Name)
	fmt.Fprintf(&b, "Tipo: %s\n", rep.ReportType)

	var sections []string
	if rep.Settings.IncludeAlerts {
		sections = append(sections, "alertas")
	}
	if rep.Settings.IncludeBackups {
		sections = append(sections, "backups")
	}
	if rep.Settings.IncludeTickets {
		sections = append(sections, "tickets")
	}
	if len(sections) > 0 {
		fmt.Fprintf(&b, "Seções: %s\n", strings.Join(sections, ", "))
	}
	if rep.Settings.CustomText != "" {
		b.WriteString(rep.Settings.CustomText)
	}
	return strings.TrimRight(b.String(), "\n")
}
