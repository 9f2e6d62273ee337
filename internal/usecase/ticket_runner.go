package usecase

import (
	"context"
	"log/slog"

	"opsboard/internal/analytics"
	"opsboard/internal/client/glpi"
	"opsboard/internal/domain/integration"
	"opsboard/internal/domain/job"
	"opsboard/internal/infra"
	"opsboard/internal/metrics"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/pkg/errs"
)

const glpiNotConfigured = "Integração GLPI não configurada"

// TicketRunner executes one batch of due scheduled tickets.
type TicketRunner interface {
	Run(ctx context.Context, flags RunFlags) (*BatchResult, error)
}

type ticketRunnerImpl struct {
	tickets TicketJobStore
	creds   CredentialStore
	glpi    TicketCreator
	calc    ScheduleCalculator
	runLogs RunLogStore
	clock   clock.Clock
	logger  *slog.Logger
	metrics metrics.Sink
	feed    analytics.Sink
}

func NewTicketRunner(
	tickets TicketJobStore,
	creds CredentialStore,
	glpiClient TicketCreator,
	calc ScheduleCalculator,
	runLogs RunLogStore,
	clk clock.Clock,
	logger *slog.Logger,
	sink metrics.Sink,
	feed analytics.Sink,
) TicketRunner {
	return &ticketRunnerImpl{
		tickets: tickets,
		creds:   creds,
		glpi:    glpiClient,
		calc:    calc,
		runLogs: runLogs,
		clock:   clk,
		logger:  logger,
		metrics: sink,
		feed:    feed,
	}
}

// Run processes every due job sequentially. Per-job failures become result
// records; only the initial scan and run-log plumbing can fail the batch.
func (uc *ticketRunnerImpl) Run(ctx context.Context, flags RunFlags) (*BatchResult, error) {
	now := uc.clock.Now()

	if err := uc.runLogs.Insert(ctx, job.PipelineScheduledTickets, job.RunStarted, startDetails(flags, now)); err != nil {
		return nil, uc.critical(ctx, err)
	}

	due, err := uc.tickets.FindDue(ctx, now)
	if err != nil {
		return nil, uc.critical(ctx, err)
	}

	results := make([]job.ExecutionResult, 0, len(due))
	successful := 0
	for _, t := range due {
		res := uc.executeOne(ctx, t)

		// Advancement is unconditional: last_execution and the attempt
		// counter move even when the side effect failed.
		next := nextExecution(uc.calc, uc.logger, job.PipelineScheduledTickets, t.Name, t.CronExpression, now)
		if aerr := uc.tickets.Advance(ctx, t.ID, now, next); aerr != nil {
			uc.logger.Error("failed to persist schedule advancement",
				"job", t.Name, "error", aerr)
		}
		res.NextExecution = next

		uc.metrics.JobAttempt(job.PipelineScheduledTickets, res.Success)
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

	if err := uc.runLogs.Insert(ctx, job.PipelineScheduledTickets, job.RunCompleted, completedDetails(summary)); err != nil {
		return nil, uc.critical(ctx, err)
	}

	uc.metrics.BatchCompleted(job.PipelineScheduledTickets, summary.Successful, summary.Failed, elapsed)
	recordBatchActivity(ctx, uc.feed, job.PipelineScheduledTickets, summary)

	return &BatchResult{
		Success:         true,
		Executed:        summary.Executed,
		Successful:      summary.Successful,
		Failed:          summary.Failed,
		ExecutionTimeMs: summary.ExecutionTimeMs,
		Results:         results,
		Timestamp:       now,
		Message:         "Processamento de tickets agendados concluído",
	}, nil
}

func (uc *ticketRunnerImpl) executeOne(ctx context.Context, t *job.ScheduledTicket) job.ExecutionResult {
	res := job.ExecutionResult{JobID: t.ID, JobName: t.Name}

	cred, err := uc.creds.FindActive(ctx, t.OwnerID, integration.KindGLPI)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			res.Error = glpiNotConfigured
		} else {
			res.Error = errs.Wrap(err, "failed to resolve GLPI credentials").Error()
		}
		uc.logger.Warn("scheduled ticket skipped", "job", t.Name, "error", res.Error)
		return res
	}

	ticketID, err := uc.glpi.CreateTicket(ctx, *cred, glpi.TicketInput{
		Name:       t.Title,
		Content:    t.Content,
		Urgency:    t.Urgency,
		Impact:     t.Impact,
		Priority:   t.Priority,
		EntityID:   t.EntityID,
		AssigneeID: t.AssigneeID,
	})
	if err != nil {
		res.Error = err.Error()
		uc.logger.Warn("scheduled ticket failed", "job", t.Name, "error", err)
		return res
	}

	res.Success = true
	res.ExternalID = &ticketID
	uc.logger.Info("scheduled ticket created", "job", t.Name, "ticket_id", ticketID)
	return res
}

// critical handles errors outside the per-job boundary: the batch aborts, the
// caller gets a 500, and a critical_error record is written best-effort.
func (uc *ticketRunnerImpl) critical(ctx context.Context, err error) error {
	uc.logger.Error("scheduled ticket batch aborted", "error", err)
	uc.metrics.BatchCritical(job.PipelineScheduledTickets)
	_ = uc.runLogs.Insert(ctx, job.PipelineScheduledTickets, job.RunCriticalError, map[string]any{
		"timestamp": uc.clock.Now(),
		"error":     err.Error(),
	})
	return err
}
