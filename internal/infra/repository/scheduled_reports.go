package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/domain/job"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/pgconv"
)

const reportColumns = `
	id, owner_id, name, is_active, cron_expression,
	next_execution, last_execution, execution_count,
	phone_number, report_type, settings,
	created_at, updated_at`

const queryDueReports = `
SELECT ` + reportColumns + `
FROM scheduled_reports
WHERE is_active = true
  AND next_execution IS NOT NULL
  AND next_execution <= $1`

const queryReportByID = `
SELECT ` + reportColumns + `
FROM scheduled_reports
WHERE id = $1`

const queryListReports = `
SELECT ` + reportColumns + `
FROM scheduled_reports
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const queryInsertReport = `
INSERT INTO scheduled_reports (
	id, owner_id, name, is_active, cron_expression, next_execution,
	phone_number, report_type, settings, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

const queryUpdateReport = `
UPDATE scheduled_reports
SET name = $2, is_active = $3, cron_expression = $4, next_execution = $5,
    phone_number = $6, report_type = $7, settings = $8, updated_at = $9
WHERE id = $1`

const queryDeleteReport = `
DELETE FROM scheduled_reports WHERE id = $1`

const queryAdvanceReport = `
UPDATE scheduled_reports
SET last_execution = $2, next_execution = $3,
    execution_count = execution_count + 1, updated_at = $2
WHERE id = $1`

type ScheduledReportRepository struct {
	db DB
}

func NewScheduledReportRepository(db DB) *ScheduledReportRepository {
	return &ScheduledReportRepository{db: db}
}

func (r *ScheduledReportRepository) FindDue(ctx context.Context, now time.Time) ([]*job.ScheduledReport, error) {
	rows, err := r.db.Query(ctx, queryDueReports, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query due scheduled reports", err)
	}
	defer rows.Close()

	var out []*job.ScheduledReport
	for rows.Next() {
		rep, serr := scanReport(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan scheduled report", serr)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate scheduled reports", err)
	}
	return out, nil
}

func (r *ScheduledReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*job.ScheduledReport, error) {
	rep, err := scanReport(r.db.QueryRow(ctx, queryReportByID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scheduled report not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get scheduled report", err)
	}
	return rep, nil
}

func (r *ScheduledReportRepository) List(ctx context.Context, limit, offset int32) ([]*job.ScheduledReport, error) {
	rows, err := r.db.Query(ctx, queryListReports, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled reports", err)
	}
	defer rows.Close()

	var out []*job.ScheduledReport
	for rows.Next() {
		rep, serr := scanReport(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan scheduled report", serr)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate scheduled reports", err)
	}
	return out, nil
}

func (r *ScheduledReportRepository) Create(ctx context.Context, rep *job.ScheduledReport) error {
	settings, err := json.Marshal(rep.Settings)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal report settings", err)
	}
	_, err = r.db.Exec(ctx, queryInsertReport,
		rep.ID, rep.OwnerID, rep.Name, rep.IsActive, rep.CronExpression,
		pgconv.TimePtrToPgtype(rep.NextExecution),
		rep.PhoneNumber, rep.ReportType, settings, rep.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create scheduled report", err)
	}
	return nil
}

func (r *ScheduledReportRepository) Update(ctx context.Context, rep *job.ScheduledReport) error {
	settings, err := json.Marshal(rep.Settings)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal report settings", err)
	}
	tag, err := r.db.Exec(ctx, queryUpdateReport,
		rep.ID, rep.Name, rep.IsActive, rep.CronExpression,
		pgconv.TimePtrToPgtype(rep.NextExecution),
		rep.PhoneNumber, rep.ReportType, settings, rep.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update scheduled report", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("scheduled report not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduledReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, queryDeleteReport, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete scheduled report", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("scheduled report not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduledReportRepository) Advance(ctx context.Context, id uuid.UUID, ranAt time.Time, next *time.Time) error {
	_, err := r.db.Exec(ctx, queryAdvanceReport, id, ranAt, pgconv.TimePtrToPgtype(next))
	if err != nil {
		return infra.WrapRepoErr("failed to advance scheduled report", err)
	}
	return nil
}

func scanReport(row rowScanner) (*job.ScheduledReport, error) {
	var rep job.ScheduledReport
	var settings []byte
	err := row.Scan(
		&rep.ID, &rep.OwnerID, &rep.Name, &rep.IsActive, &rep.CronExpression,
		&rep.NextExecution, &rep.LastExecution, &rep.ExecutionCount,
		&rep.PhoneNumber, &rep.ReportType, &settings,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &rep.Settings); err != nil {
			return nil, err
		}
	}
	return &rep, nil
}
