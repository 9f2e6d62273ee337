package job

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledTicket is a due-queue row that creates a GLPI ticket on each run.
type ScheduledTicket struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	IsActive       bool
	CronExpression string
	NextExecution  *time.Time // nil means paused (schedule could not be advanced)
	LastExecution  *time.Time
	ExecutionCount int32 // attempts, not successes
	Title          string
	Content        string
	Urgency        int32
	Impact         int32
	Priority       int32
	EntityID       int32
	AssigneeID     *int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ScheduledReport is a due-queue row that sends a WhatsApp report on each run.
type ScheduledReport struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	IsActive       bool
	CronExpression string
	NextExecution  *time.Time
	LastExecution  *time.Time
	ExecutionCount int32
	PhoneNumber    string
	ReportType     string
	Settings       ReportSettings
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReportSettings is the free-form per-report configuration (stored as JSONB).
type ReportSettings struct {
	IncludeAlerts  bool   `json:"include_alerts"`
	IncludeBackups bool   `json:"include_backups"`
	IncludeTickets bool   `json:"include_tickets"`
	CustomText     string `json:"custom_text,omitempty"`
}

// ExecutionResult is the per-job outcome collected during one batch.
// It is only persisted inside the terminal run-log record.
type ExecutionResult struct {
	JobID         uuid.UUID  `json:"job_id"`
	JobName       string     `json:"job_name"`
	Success       bool       `json:"success"`
	ExternalID    *string    `json:"external_id,omitempty"`
	Error         string     `json:"error,omitempty"`
	NextExecution *time.Time `json:"next_execution,omitempty"`
}
