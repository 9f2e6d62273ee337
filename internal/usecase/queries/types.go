package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ScheduledTicketView struct {
	ID             uuid.UUID  `json:"id"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	Name           string     `json:"name"`
	IsActive       bool       `json:"is_active"`
	CronExpression string     `json:"cron_expression"`
	NextExecution  *time.Time `json:"next_execution,omitempty"`
	LastExecution  *time.Time `json:"last_execution,omitempty"`
	ExecutionCount int32      `json:"execution_count"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Urgency        int32      `json:"urgency"`
	Impact         int32      `json:"impact"`
	Priority       int32      `json:"priority"`
	EntityID       int32      `json:"entity_id"`
	AssigneeID     *int32     `json:"assignee_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReportSettingsView struct {
	IncludeAlerts  bool   `json:"include_alerts"`
	IncludeBackups bool   `json:"include_backups"`
	IncludeTickets bool   `json:"include_tickets"`
	CustomText     string `json:"custom_text,omitempty"`
}

type ScheduledReportView struct {
	ID             uuid.UUID          `json:"id"`
	OwnerID        uuid.UUID          `json:"owner_id"`
	Name           string             `json:"name"`
	IsActive       bool               `json:"is_active"`
	CronExpression string             `json:"cron_expression"`
	NextExecution  *time.Time         `json:"next_execution,omitempty"`
	LastExecution  *time.Time         `json:"last_execution,omitempty"`
	ExecutionCount int32              `json:"execution_count"`
	PhoneNumber    string             `json:"phone_number"`
	ReportType     string             `json:"report_type"`
	Settings       ReportSettingsView `json:"settings"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type SubscriptionActionsView struct {
	CreateTicket          bool   `json:"create_ticket"`
	TicketEntityID        int32  `json:"ticket_entity_id,omitempty"`
	SendMessage           bool   `json:"send_message"`
	MessageTarget         string `json:"message_target,omitempty"`
	CustomMessageTemplate string `json:"custom_message_template,omitempty"`
}

type SubscriptionView struct {
	ID            uuid.UUID               `json:"id"`
	OwnerID       uuid.UUID               `json:"owner_id"`
	Name          string                  `json:"name"`
	TriggerType   string                  `json:"trigger_type"`
	IsActive      bool                    `json:"is_active"`
	Actions       SubscriptionActionsView `json:"actions"`
	TriggerCount  int32                   `json:"trigger_count"`
	LastTriggered *time.Time              `json:"last_triggered,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

type RunLogView struct {
	ID        uuid.UUID      `json:"id"`
	JobName   string         `json:"job_name"`
	Status    string         `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
