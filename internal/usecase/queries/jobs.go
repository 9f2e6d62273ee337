package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries_mock.go -package=queriesmock opsboard/internal/usecase/queries TicketQueries,ReportQueries,SubscriptionQueries,RunLogQueries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"opsboard/internal/domain/job"
	"opsboard/internal/pkg/errs"
)

const defaultListLimit = 50

// TicketViewRepo is the read surface of the scheduled_tickets table.
type TicketViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*job.ScheduledTicket, error)
	List(ctx context.Context, limit, offset int32) ([]*job.ScheduledTicket, error)
}

type ReportViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*job.ScheduledReport, error)
	List(ctx context.Context, limit, offset int32) ([]*job.ScheduledReport, error)
}

type TicketQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ScheduledTicketView, error)
	List(ctx context.Context, limit, offset int32) ([]*ScheduledTicketView, error)
}

type ReportQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ScheduledReportView, error)
	List(ctx context.Context, limit, offset int32) ([]*ScheduledReportView, error)
}

type ticketQueriesImpl struct {
	repo TicketViewRepo
}

func NewTicketQueries(repo TicketViewRepo) TicketQueries {
	return &ticketQueriesImpl{repo: repo}
}

func (q *ticketQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ScheduledTicketView, error) {
	t, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ticketView(t)
}

func (q *ticketQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*ScheduledTicketView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := q.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*ScheduledTicketView, 0, len(rows))
	for _, t := range rows {
		view, verr := ticketView(t)
		if verr != nil {
			return nil, verr
		}
		out = append(out, view)
	}
	return out, nil
}

type reportQueriesImpl struct {
	repo ReportViewRepo
}

func NewReportQueries(repo ReportViewRepo) ReportQueries {
	return &reportQueriesImpl{repo: repo}
}

func (q *reportQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ScheduledReportView, error) {
	rep, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return reportView(rep)
}

func (q *reportQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*ScheduledReportView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := q.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*ScheduledReportView, 0, len(rows))
	for _, rep := range rows {
		view, verr := reportView(rep)
		if verr != nil {
			return nil, verr
		}
		out = append(out, view)
	}
	return out, nil
}

func ticketView(t *job.ScheduledTicket) (*ScheduledTicketView, error) {
	var view ScheduledTicketView
	if err := copier.Copy(&view, t); err != nil {
		return nil, errs.Wrap(err, "failed to map scheduled ticket view")
	}
	return &view, nil
}

func reportView(rep *job.ScheduledReport) (*ScheduledReportView, error) {
	var view ScheduledReportView
	if err := copier.Copy(&view, rep); err != nil {
		return nil, errs.Wrap(err, "failed to map scheduled report view")
	}
	return &view, nil
}
