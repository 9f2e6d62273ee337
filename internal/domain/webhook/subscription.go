package webhook

import (
	"time"

	"github.com/google/uuid"
)

type TriggerType string

const (
	TriggerProblemCreated  TriggerType = "problem_created"
	TriggerProblemResolved TriggerType = "problem_resolved"
)

// Subscription is a registered fan-out target for inbound alerts.
// TriggerCount/LastTriggered count matches, not successful deliveries.
type Subscription struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	TriggerType   TriggerType
	IsActive      bool
	Actions       Actions
	TriggerCount  int32
	LastTriggered *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Actions enumerates the side effects configured for one subscription
// (stored as JSONB). Each action is attempted independently.
type Actions struct {
	CreateTicket          bool   `json:"create_ticket"`
	TicketEntityID        int32  `json:"ticket_entity_id,omitempty"`
	SendMessage           bool   `json:"send_message"`
	MessageTarget         string `json:"message_target,omitempty"`
	CustomMessageTemplate string `json:"custom_message_template,omitempty"`
}

// ActionResult is the per-action outcome reported back to the webhook caller.
type ActionResult struct {
	Action  string `json:"action"`
	Success bool   `json:"success"`
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SubscriptionResult groups the action outcomes of one matched subscription.
type SubscriptionResult struct {
	SubscriptionID uuid.UUID      `json:"subscription_id"`
	Name           string         `json:"name"`
	Actions        []ActionResult `json:"actions"`
}
