package response

import (
	"time"

	"github.com/google/uuid"

	"opsboard/internal/usecase/queries"
)

type SubscriptionResponse struct {
	ID            uuid.UUID                       `json:"id"`
	OwnerID       uuid.UUID                       `json:"owner_id"`
	Name          string                          `json:"name"`
	TriggerType   string                          `json:"trigger_type"`
	IsActive      bool                            `json:"is_active"`
	Actions       queries.SubscriptionActionsView `json:"actions"`
	TriggerCount  int32                           `json:"trigger_count"`
	LastTriggered *time.Time                      `json:"last_triggered,omitempty"`
	CreatedAt     time.Time                       `json:"created_at"`
	UpdatedAt     time.Time                       `json:"updated_at"`
}

func FromSubscriptionView(view *queries.SubscriptionView) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:            view.ID,
		OwnerID:       view.OwnerID,
		Name:          view.Name,
		TriggerType:   view.TriggerType,
		IsActive:      view.IsActive,
		Actions:       view.Actions,
		TriggerCount:  view.TriggerCount,
		LastTriggered: view.LastTriggered,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}
