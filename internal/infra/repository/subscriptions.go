package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/domain/webhook"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/pgconv"
)

const subscriptionColumns = `
	id, owner_id, name, trigger_type, is_active, actions,
	trigger_count, last_triggered, created_at, updated_at`

const queryActiveSubsByTrigger = `
SELECT ` + subscriptionColumns + `
FROM webhook_subscriptions
WHERE is_active = true AND trigger_type = $1`

const querySubByID = `
SELECT ` + subscriptionColumns + `
FROM webhook_subscriptions
WHERE id = $1`

const queryListSubs = `
SELECT ` + subscriptionColumns + `
FROM webhook_subscriptions
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const queryInsertSub = `
INSERT INTO webhook_subscriptions (
	id, owner_id, name, trigger_type, is_active, actions, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

const queryUpdateSub = `
UPDATE webhook_subscriptions
SET name = $2, trigger_type = $3, is_active = $4, actions = $5, updated_at = $6
WHERE id = $1`

const queryDeleteSub = `
DELETE FROM webhook_subscriptions WHERE id = $1`

const queryRecordTrigger = `
UPDATE webhook_subscriptions
SET trigger_count = trigger_count + 1, last_triggered = $2
WHERE id = $1`

type SubscriptionRepository struct {
	db DB
}

func NewSubscriptionRepository(db DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) FindActiveByTrigger(ctx context.Context, trigger webhook.TriggerType) ([]*webhook.Subscription, error) {
	rows, err := r.db.Query(ctx, queryActiveSubsByTrigger, string(trigger))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query webhook subscriptions", err)
	}
	defer rows.Close()

	var out []*webhook.Subscription
	for rows.Next() {
		sub, serr := scanSubscription(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook subscription", serr)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate webhook subscriptions", err)
	}
	return out, nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*webhook.Subscription, error) {
	sub, err := scanSubscription(r.db.QueryRow(ctx, querySubByID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("webhook subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get webhook subscription", err)
	}
	return sub, nil
}

func (r *SubscriptionRepository) List(ctx context.Context, limit, offset int32) ([]*webhook.Subscription, error) {
	rows, err := r.db.Query(ctx, queryListSubs, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhook subscriptions", err)
	}
	defer rows.Close()

	var out []*webhook.Subscription
	for rows.Next() {
		sub, serr := scanSubscription(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook subscription", serr)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate webhook subscriptions", err)
	}
	return out, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *webhook.Subscription) error {
	actions, err := json.Marshal(sub.Actions)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal subscription actions", err)
	}
	_, err = r.db.Exec(ctx, queryInsertSub,
		sub.ID, sub.OwnerID, sub.Name, string(sub.TriggerType), sub.IsActive,
		actions, sub.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create webhook subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *webhook.Subscription) error {
	actions, err := json.Marshal(sub.Actions)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal subscription actions", err)
	}
	tag, err := r.db.Exec(ctx, queryUpdateSub,
		sub.ID, sub.Name, string(sub.TriggerType), sub.IsActive, actions, sub.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update webhook subscription", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("webhook subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, queryDeleteSub, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete webhook subscription", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("webhook subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

// RecordTrigger bumps the match counter before any side effect is attempted;
// the counter reflects "matched", not "succeeded".
func (r *SubscriptionRepository) RecordTrigger(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, queryRecordTrigger, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to record subscription trigger", err)
	}
	return nil
}

func scanSubscription(row rowScanner) (*webhook.Subscription, error) {
	var sub webhook.Subscription
	var trigger string
	var actions []byte
	err := row.Scan(
		&sub.ID, &sub.OwnerID, &sub.Name, &trigger, &sub.IsActive, &actions,
		&sub.TriggerCount, &sub.LastTriggered, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.TriggerType = webhook.TriggerType(trigger)
	if len(actions) > 0 {
		if err := json.Unmarshal(actions, &sub.Actions); err != nil {
			return nil, err
		}
	}
	return &sub, nil
}
