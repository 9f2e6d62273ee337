package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"opsboard/internal/domain/job"
	"opsboard/internal/infra"
)

const queryInsertRunLog = `
INSERT INTO cron_run_logs (id, job_name, status, details, created_at)
VALUES ($1, $2, $3, $4, now())`

const queryListRunLogs = `
SELECT id, job_name, status, details, created_at
FROM cron_run_logs
WHERE ($1 = '' OR job_name = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// RunLogRepository is append-mostly: the pipelines only write, the dashboard
// reads through the management API.
type RunLogRepository struct {
	db DB
}

func NewRunLogRepository(db DB) *RunLogRepository {
	return &RunLogRepository{db: db}
}

func (r *RunLogRepository) Insert(ctx context.Context, jobName string, status job.RunStatus, details map[string]any) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal run log details", err)
	}
	_, err = r.db.Exec(ctx, queryInsertRunLog, uuid.New(), jobName, string(status), payload)
	if err != nil {
		return infra.WrapRepoErr("failed to insert run log", err)
	}
	return nil
}

func (r *RunLogRepository) List(ctx context.Context, jobName string, limit, offset int32) ([]*job.RunLog, error) {
	rows, err := r.db.Query(ctx, queryListRunLogs, jobName, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list run logs", err)
	}
	defer rows.Close()

	var out []*job.RunLog
	for rows.Next() {
		var entry job.RunLog
		var status string
		var details []byte
		if err := rows.Scan(&entry.ID, &entry.JobName, &status, &details, &entry.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan run log", err)
		}
		entry.Status = job.RunStatus(status)
		if len(details) > 0 {
			if err := json.Unmarshal(details, &entry.Details); err != nil {
				return nil, infra.WrapRepoErr("failed to decode run log details", err)
			}
		}
		out = append(out, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate run logs", err)
	}
	return out, nil
}
