package request

import (
	"github.com/google/uuid"
)

type SubscriptionActionsPayload struct {
	CreateTicket          bool   `json:"create_ticket"`
	TicketEntityID        int32  `json:"ticket_entity_id,omitempty"`
	SendMessage           bool   `json:"send_message"`
	MessageTarget         string `json:"message_target,omitempty"`
	CustomMessageTemplate string `json:"custom_message_template,omitempty"`
}

type CreateSubscriptionRequest struct {
	OwnerID     uuid.UUID                  `json:"owner_id" binding:"required"`
	Name        string                     `json:"name" binding:"required"`
	TriggerType string                     `json:"trigger_type" binding:"required,oneof=problem_created problem_resolved"`
	IsActive    *bool                      `json:"is_active,omitempty"`
	Actions     SubscriptionActionsPayload `json:"actions" binding:"required"`
}

type UpdateSubscriptionRequest struct {
	Name        *string                     `json:"name,omitempty"`
	TriggerType *string                     `json:"trigger_type,omitempty" binding:"omitempty,oneof=problem_created problem_resolved"`
	IsActive    *bool                       `json:"is_active,omitempty"`
	Actions     *SubscriptionActionsPayload `json:"actions,omitempty"`
}
