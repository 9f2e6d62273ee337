package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateScheduledTicketRequest struct {
	OwnerID        uuid.UUID `json:"owner_id" binding:"required"`
	Name           string    `json:"name" binding:"required"`
	CronExpression string    `json:"cron_expression" binding:"required"`
	IsActive       *bool     `json:"is_active,omitempty"`
	Title          string    `json:"title" binding:"required"`
	Content        string    `json:"content" binding:"required"`
	Urgency        int32     `json:"urgency" binding:"required,min=1,max=5"`
	Impact         int32     `json:"impact" binding:"required,min=1,max=5"`
	Priority       int32     `json:"priority" binding:"required,min=1,max=5"`
	EntityID       int32     `json:"entity_id"`
	AssigneeID     *int32    `json:"assignee_id,omitempty"`
}

func (r CreateScheduledTicketRequest) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}

// UpdateScheduledTicketRequest is a partial update: nil fields keep their
// current value.
type UpdateScheduledTicketRequest struct {
	Name           *string `json:"name,omitempty"`
	CronExpression *string `json:"cron_expression,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	Title          *string `json:"title,omitempty"`
	Content        *string `json:"content,omitempty"`
	Urgency        *int32  `json:"urgency,omitempty" binding:"omitempty,min=1,max=5"`
	Impact         *int32  `json:"impact,omitempty" binding:"omitempty,min=1,max=5"`
	Priority       *int32  `json:"priority,omitempty" binding:"omitempty,min=1,max=5"`
	EntityID       *int32  `json:"entity_id,omitempty"`
	AssigneeID     *int32  `json:"assignee_id,omitempty"`
}
