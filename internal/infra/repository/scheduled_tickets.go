package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/domain/job"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/pgconv"
)

const ticketColumns = `
	id, owner_id, name, is_active, cron_expression,
	next_execution, last_execution, execution_count,
	title, content, urgency, impact, priority, entity_id, assignee_id,
	created_at, updated_at`

const queryDueTickets = `
SELECT ` + ticketColumns + `
FROM scheduled_tickets
WHERE is_active = true
  AND next_execution IS NOT NULL
  AND next_execution <= $1`

const queryTicketByID = `
SELECT ` + ticketColumns + `
FROM scheduled_tickets
WHERE id = $1`

const queryListTickets = `
SELECT ` + ticketColumns + `
FROM scheduled_tickets
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const queryInsertTicket = `
INSERT INTO scheduled_tickets (
	id, owner_id, name, is_active, cron_expression, next_execution,
	title, content, urgency, impact, priority, entity_id, assignee_id,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`

const queryUpdateTicket = `
UPDATE scheduled_tickets
SET name = $2, is_active = $3, cron_expression = $4, next_execution = $5,
    title = $6, content = $7, urgency = $8, impact = $9, priority = $10,
    entity_id = $11, assignee_id = $12, updated_at = $13
WHERE id = $1`

const queryDeleteTicket = `
DELETE FROM scheduled_tickets WHERE id = $1`

const queryAdvanceTicket = `
UPDATE scheduled_tickets
SET last_execution = $2, next_execution = $3,
    execution_count = execution_count + 1, updated_at = $2
WHERE id = $1`

type ScheduledTicketRepository struct {
	db DB
}

func NewScheduledTicketRepository(db DB) *ScheduledTicketRepository {
	return &ScheduledTicketRepository{db: db}
}

// FindDue returns every active row whose next_execution has passed.
// No lock, no limit: a batch is whatever is due at T.
func (r *ScheduledTicketRepository) FindDue(ctx context.Context, now time.Time) ([]*job.ScheduledTicket, error) {
	rows, err := r.db.Query(ctx, queryDueTickets, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query due scheduled tickets", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ScheduledTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*job.ScheduledTicket, error) {
	row := r.db.QueryRow(ctx, queryTicketByID, id)
	t, err := scanTicket(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scheduled ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get scheduled ticket", err)
	}
	return t, nil
}

func (r *ScheduledTicketRepository) List(ctx context.Context, limit, offset int32) ([]*job.ScheduledTicket, error) {
	rows, err := r.db.Query(ctx, queryListTickets, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled tickets", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ScheduledTicketRepository) Create(ctx context.Context, t *job.ScheduledTicket) error {
	_, err := r.db.Exec(ctx, queryInsertTicket,
		t.ID, t.OwnerID, t.Name, t.IsActive, t.CronExpression,
		pgconv.TimePtrToPgtype(t.NextExecution),
		t.Title, t.Content, t.Urgency, t.Impact, t.Priority, t.EntityID,
		pgconv.Int32PtrToPgtype(t.AssigneeID),
		t.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create scheduled ticket", err)
	}
	return nil
}

func (r *ScheduledTicketRepository) Update(ctx context.Context, t *job.ScheduledTicket) error {
	tag, err := r.db.Exec(ctx, queryUpdateTicket,
		t.ID, t.Name, t.IsActive, t.CronExpression,
		pgconv.TimePtrToPgtype(t.NextExecution),
		t.Title, t.Content, t.Urgency, t.Impact, t.Priority, t.EntityID,
		pgconv.Int32PtrToPgtype(t.AssigneeID),
		t.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update scheduled ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("scheduled ticket not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduledTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, queryDeleteTicket, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete scheduled ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("scheduled ticket not found", nil, infra.KindNotFound)
	}
	return nil
}

// Advance records one attempt: last_execution and the counter move
// unconditionally, next_execution may be nil when the cron expression could
// not be advanced (pauses the job).
func (r *ScheduledTicketRepository) Advance(ctx context.Context, id uuid.UUID, ranAt time.Time, next *time.Time) error {
	_, err := r.db.Exec(ctx, queryAdvanceTicket, id, ranAt, pgconv.TimePtrToPgtype(next))
	if err != nil {
		return infra.WrapRepoErr("failed to advance scheduled ticket", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*job.ScheduledTicket, error) {
	var t job.ScheduledTicket
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Name, &t.IsActive, &t.CronExpression,
		&t.NextExecution, &t.LastExecution, &t.ExecutionCount,
		&t.Title, &t.Content, &t.Urgency, &t.Impact, &t.Priority,
		&t.EntityID, &t.AssigneeID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTickets(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*job.ScheduledTicket, error) {
	var out []*job.ScheduledTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan scheduled ticket", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate scheduled tickets", err)
	}
	return out, nil
}
