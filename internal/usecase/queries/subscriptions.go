package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"opsboard/internal/domain/webhook"
	"opsboard/internal/pkg/errs"
)

type SubscriptionViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*webhook.Subscription, error)
	List(ctx context.Context, limit, offset int32) ([]*webhook.Subscription, error)
}

type SubscriptionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error)
	List(ctx context.Context, limit, offset int32) ([]*SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	repo SubscriptionViewRepo
}

func NewSubscriptionQueries(repo SubscriptionViewRepo) SubscriptionQueries {
	return &subscriptionQueriesImpl{repo: repo}
}

func (q *subscriptionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error) {
	sub, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return subscriptionView(sub)
}

func (q *subscriptionQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*SubscriptionView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := q.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*SubscriptionView, 0, len(rows))
	for _, sub := range rows {
		view, verr := subscriptionView(sub)
		if verr != nil {
			return nil, verr
		}
		out = append(out, view)
	}
	return out, nil
}

func subscriptionView(sub *webhook.Subscription) (*SubscriptionView, error) {
	var view SubscriptionView
	if err := copier.Copy(&view, sub); err != nil {
		return nil, errs.Wrap(err, "failed to map subscription view")
	}
	view.TriggerType = string(sub.TriggerType)
	return &view, nil
}
