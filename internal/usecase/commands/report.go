package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"opsboard/internal/domain/job"
	reqdto "opsboard/internal/handler/dto/request"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/ptr"
	"opsboard/internal/usecase/queries"
)

type ReportWriteRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*job.ScheduledReport, error)
	Create(ctx context.Context, rep *job.ScheduledReport) error
	Update(ctx context.Context, rep *job.ScheduledReport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReportCommands interface {
	Create(ctx context.Context, req reqdto.CreateScheduledReportRequest) (*queries.ScheduledReportView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateScheduledReportRequest) (*queries.ScheduledReportView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportCommandsImpl struct {
	repo  ReportWriteRepo
	views queries.ReportQueries
	calc  ScheduleCalculator
	clock clock.Clock
}

func NewReportCommands(
	repo ReportWriteRepo,
	views queries.ReportQueries,
	calc ScheduleCalculator,
	clk clock.Clock,
) ReportCommands {
	return &reportCommandsImpl{
		repo:  repo,
		views: views,
		calc:  calc,
		clock: clk,
	}
}

func (c *reportCommandsImpl) Create(ctx context.Context, req reqdto.CreateScheduledReportRequest) (*queries.ScheduledReportView, error) {
	if err := c.calc.Validate(req.CronExpression); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCronExpr)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errs.Mark(errs.New("name must not be blank"), errs.ErrDomainValidation)
	}

	now := c.clock.Now()
	next, err := c.calc.Next(req.CronExpression, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCronExpr)
	}

	rep := &job.ScheduledReport{
		ID:             uuid.New(),
		OwnerID:        req.OwnerID,
		Name:           name,
		IsActive:       ptr.Coalesce(req.IsActive, true),
		CronExpression: req.CronExpression,
		NextExecution:  &next,
		PhoneNumber:    req.PhoneNumber,
		ReportType:     req.ReportType,
		Settings:       reportSettings(req.Settings),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := c.repo.Create(ctx, rep); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.views.GetByID(ctx, rep.ID)
}

func (c *reportCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateScheduledReportRequest) (*queries.ScheduledReportView, error) {
	rep, err := c.repo.FindByID(ctx, id)
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
		rep.Name = name
	}
	rep.IsActive = ptr.Coalesce(req.IsActive, rep.IsActive)
	rep.PhoneNumber = ptr.Coalesce(req.PhoneNumber, rep.PhoneNumber)
	rep.ReportType = ptr.Coalesce(req.ReportType, rep.ReportType)
	if req.Settings != nil {
		rep.Settings = reportSettings(req.Settings)
	}

	if req.CronExpression != nil && *req.CronExpression != rep.CronExpression {
		if err := c.calc.Validate(*req.CronExpression); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidCronExpr)
		}
		next, nerr := c.calc.Next(*req.CronExpression, c.clock.Now())
		if nerr != nil {
			return nil, errs.Mark(nerr, errs.ErrInvalidCronExpr)
		}
		rep.CronExpression = *req.CronExpression
		rep.NextExecution = &next
	}
	rep.UpdatedAt = c.clock.Now()

	if err := c.repo.Update(ctx, rep); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrScheduledJobNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.views.GetByID(ctx, id)
}

func (c *reportCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrScheduledJobNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func reportSettings(payload *reqdto.ReportSettingsPayload) job.ReportSettings {
	if payload == nil {
		return job.ReportSettings{}
	}
	return job.ReportSettings{
		IncludeAlerts:  payload.IncludeAlerts,
		IncludeBackups: payload.IncludeBackups,
		IncludeTickets: payload.IncludeTickets,
		CustomText:     payload.CustomText,
	}
}
