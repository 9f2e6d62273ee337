package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands_mock.go -package=commandsmock opsboard/internal/usecase/commands TicketCommands,ReportCommands,SubscriptionCommands
//go:generate mockgen -destination=../../../tests/mock/commands/repos_mock.go -package=commandsmock opsboard/internal/usecase/commands TicketWriteRepo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/domain/job"
	reqdto "opsboard/internal/handler/dto/request"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/ptr"
	"opsboard/internal/usecase/queries"
)

// TicketWriteRepo is the write surface of the scheduled_tickets table.
type TicketWriteRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*job.ScheduledTicket, error)
	Create(ctx context.Context, t *job.ScheduledTicket) error
	Update(ctx context.Context, t *job.ScheduledTicket) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScheduleCalculator validates and advances cron expressions.
type ScheduleCalculator interface {
	Next(expr string, from time.Time) (time.Time, error)
	Validate(expr string) error
}

type TicketCommands interface {
	Create(ctx context.Context, req reqdto.CreateScheduledTicketRequest) (*queries.ScheduledTicketView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateScheduledTicketRequest) (*queries.ScheduledTicketView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketCommandsImpl struct {
	repo  TicketWriteRepo
	views queries.TicketQueries
	calc  ScheduleCalculator
	clock clock.Clock
}

func NewTicketCommands(
	repo TicketWriteRepo,
	views queries.TicketQueries,
	calc ScheduleCalculator,
	clk clock.Clock,
) TicketCommands {
	return &ticketCommandsImpl{
		repo:  repo,
		views: views,
		calc:  calc,
		clock: clk,
	}
}

func (c *ticketCommandsImpl) Create(ctx context.Context, req reqdto.CreateScheduledTicketRequest) (*queries.ScheduledTicketView, error) {
	if err := c.calc.Validate(req.CronExpression); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCronExpr)
	}
	name := req.TrimmedName()
	if name == "" {
		return nil, errs.Mark(errs.New("name must not be blank"), errs.ErrDomainValidation)
	}

	now := c.clock.Now()
	next, err := c.calc.Next(req.CronExpression, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCronExpr)
	}

	t := &job.ScheduledTicket{
		ID:             uuid.New(),
		OwnerID:        req.OwnerID,
		Name:           name,
		IsActive:       ptr.Coalesce(req.IsActive, true),
		CronExpression: req.CronExpression,
		NextExecution:  &next,
		Title:          req.Title,
		Content:        req.Content,
		Urgency:        req.Urgency,
		Impact:         req.Impact,
		Priority:       req.Priority,
		EntityID:       req.EntityID,
		AssigneeID:     req.AssigneeID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := c.repo.Create(ctx, t); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.views.GetByID(ctx, t.ID)
}

func (c *ticketCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateScheduledTicketRequest) (*queries.ScheduledTicketView, error) {
	t, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrScheduledJobNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errs.Mark(errs.New("name must not be blank"), errs.ErrDomainValidation)
		}
		t.Name = name
	}
	t.IsActive = ptr.Coalesce(req.IsActive, t.IsActive)
	t.Title = ptr.Coalesce(req.Title, t.Title)
	t.Content = ptr.Coalesce(req.Content, t.Content)
	t.Urgency = ptr.Coalesce(req.Urgency, t.Urgency)
	t.Impact = ptr.Coalesce(req.Impact, t.Impact)
	t.Priority = ptr.Coalesce(req.Priority, t.Priority)
	t.EntityID = ptr.Coalesce(req.EntityID, t.EntityID)
	if req.AssigneeID != nil {
		t.AssigneeID = req.AssigneeID
	}

	// A changed expression restarts the schedule from now; this also revives a
	// job paused by a previously unparseable expression.
	if req.CronExpression != nil && *req.CronExpression != t.CronExpression {
		if err := c.calc.Validate(*req.CronExpression); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidCronExpr)
		}
		next, nerr := c.calc.Next(*req.CronExpression, c.clock.Now())
		if nerr != nil {
			return nil, errs.Mark(nerr, errs.ErrInvalidCronExpr)
		}
		t.CronExpression = *req.CronExpression
		t.NextExecution = &next
	}
	t.UpdatedAt = c.clock.Now()

	if err := c.repo.Update(ctx, t); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrScheduledJobNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.views.GetByID(ctx, id)
}

func (c *ticketCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrScheduledJobNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
