package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"opsboard/internal/domain/webhook"
	reqdto "opsboard/internal/handler/dto/request"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/ptr"
	"opsboard/internal/usecase/queries"
)

type SubscriptionWriteRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*webhook.Subscription, error)
	Create(ctx context.Context, sub *webhook.Subscription) error
	Update(ctx context.Context, sub *webhook.Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubscriptionCommands interface {
	Create(ctx context.Context, req reqdto.CreateSubscriptionRequest) (*queries.SubscriptionView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateSubscriptionRequest) (*queries.SubscriptionView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type subscriptionCommandsImpl struct {
	repo  SubscriptionWriteRepo
	views queries.SubscriptionQueries
	clock clock.Clock
}

func NewSubscriptionCommands(
	repo SubscriptionWriteRepo,
	views queries.SubscriptionQueries,
	clk clock.Clock,
) SubscriptionCommands {
	return &subscriptionCommandsImpl{
		repo:  repo,
		views: views,
		clock: clk,
	}
}

func (c *subscriptionCommandsImpl) Create(ctx context.Context, req reqdto.CreateSubscriptionRequest) (*queries.SubscriptionView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errs.Mark(errs.New("name must not be blank"), errs.ErrDomainValidation)
	}
	actions := subscriptionActions(req.Actions)
	if err := validateActions(actions); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	sub := &webhook.Subscription{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		Name:        name,
		TriggerType: webhook.TriggerType(req.TriggerType),
		IsActive:    ptr.Coalesce(req.IsActive, true),
		Actions:     actions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.repo.Create(ctx, sub); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.views.GetByID(ctx, sub.ID)
}

func (c *subscriptionCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateSubscriptionRequest) (*queries.SubscriptionView, error) {
	sub, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSubscriptionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errs.Mark(errs.New("name must not be blank"), errs.ErrDomainValidation)
		}
		sub.Name = name
	}
	if req.TriggerType != nil {
		sub.TriggerType = webhook.TriggerType(*req.TriggerType)
	}
	sub.IsActive = ptr.Coalesce(req.IsActive, sub.IsActive)
	if req.Actions != nil {
		actions := subscriptionActions(*req.Actions)
		if err := validateActions(actions); err != nil {
			return nil, err
		}
		sub.Actions = actions
	}
	sub.UpdatedAt = c.clock.Now()

	if err := c.repo.Update(ctx, sub); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSubscriptionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.views.GetByID(ctx, id)
}

func (c *subscriptionCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSubscriptionNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func validateActions(actions webhook.Actions) error {
	if !actions.CreateTicket && !actions.SendMessage {
		return errs.Mark(errs.New("at least one action must be enabled"), errs.ErrDomainValidation)
	}
	if actions.SendMessage && strings.TrimSpace(actions.MessageTarget) == "" {
		return errs.Mark(errs.New("send_message requires a message_target"), errs.ErrDomainValidation)
	}
	return nil
}

func subscriptionActions(payload reqdto.SubscriptionActionsPayload) webhook.Actions {
	return webhook.Actions{
		CreateTicket:          payload.CreateTicket,
		TicketEntityID:        payload.TicketEntityID,
		SendMessage:           payload.SendMessage,
		MessageTarget:         payload.MessageTarget,
		CustomMessageTemplate: payload.CustomMessageTemplate,
	}
}
