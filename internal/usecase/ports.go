package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports_mock.go -package=usecasemock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/client/evolution"
	"opsboard/internal/client/glpi"
	"opsboard/internal/domain/integration"
	"opsboard/internal/domain/job"
	"opsboard/internal/domain/webhook"
)

// TicketJobStore is the due-queue surface of the scheduled_tickets table.
type TicketJobStore interface {
	FindDue(ctx context.Context, now time.Time) ([]*job.ScheduledTicket, error)
	Advance(ctx context.Context, id uuid.UUID, ranAt time.Time, next *time.Time) error
}

// ReportJobStore is the due-queue surface of the scheduled_reports table.
type ReportJobStore interface {
	FindDue(ctx context.Context, now time.Time) ([]*job.ScheduledReport, error)
	Advance(ctx context.Context, id uuid.UUID, ranAt time.Time, next *time.Time) error
}

// RunLogStore appends batch audit records.
type RunLogStore interface {
	Insert(ctx context.Context, jobName string, status job.RunStatus, details map[string]any) error
}

// CredentialStore resolves an owner's active credentials for an external
// system. Injected explicitly so the executor has no ambient lookups.
type CredentialStore interface {
	FindActive(ctx context.Context, ownerID uuid.UUID, kind integration.Kind) (*integration.Integration, error)
}

// SubscriptionStore is the fan-out surface of the webhook_subscriptions table.
type SubscriptionStore interface {
	FindActiveByTrigger(ctx context.Context, trigger webhook.TriggerType) ([]*webhook.Subscription, error)
	RecordTrigger(ctx context.Context, id uuid.UUID, at time.Time) error
}

// TicketCreator performs the GLPI side effect.
type TicketCreator interface {
	CreateTicket(ctx context.Context, cred integration.Integration, in glpi.TicketInput) (string, error)
}

// MessageSender performs the chat-gateway side effect.
type MessageSender interface {
	SendText(ctx context.Context, cred integration.Integration, msg evolution.Message) error
}

// ScheduleCalculator advances cron expressions; *schedule.Calculator satisfies it.
type ScheduleCalculator interface {
	Next(expr string, from time.Time) (time.Time, error)
	Validate(expr string) error
}
