package queries

import (
	"context"

	"opsboard/internal/domain/job"
)

type RunLogViewRepo interface {
	List(ctx context.Context, jobName string, limit, offset int32) ([]*job.RunLog, error)
}

// RunLogQueries exposes the audit trail to the dashboard. jobName filters by
// pipeline; an empty string returns every pipeline's records.
type RunLogQueries interface {
	List(ctx context.Context, jobName string, limit, offset int32) ([]*RunLogView, error)
}

type runLogQueriesImpl struct {
	repo RunLogViewRepo
}

func NewRunLogQueries(repo RunLogViewRepo) RunLogQueries {
	return &runLogQueriesImpl{repo: repo}
}

func (q *runLogQueriesImpl) List(ctx context.Context, jobName string, limit, offset int32) ([]*RunLogView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := q.repo.List(ctx, jobName, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*RunLogView, 0, len(rows))
	for _, entry := range rows {
		out = append(out, &RunLogView{
			ID:        entry.ID,
			JobName:   entry.JobName,
			Status:    string(entry.Status),
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		})
	}
	return out, nil
}
