package job

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStarted       RunStatus = "started"
	RunCompleted     RunStatus = "completed"
	RunCriticalError RunStatus = "critical_error"
)

// Pipeline identifiers used as job_name in the run log.
const (
	PipelineScheduledTickets = "scheduled_tickets"
	PipelineScheduledReports = "scheduled_reports"
	PipelineWebhookFanout    = "webhook_fanout"
)

// RunLog is one append-only audit row. Details is a free-form JSON payload:
// batch start flags, the full results array on completion, or an error message.
type RunLog struct {
	ID        uuid.UUID
	JobName   string
	Status    RunStatus
	Details   map[string]any
	CreatedAt time.Time
}

// BatchSummary is the terminal "completed" details payload.
type BatchSummary struct {
	Timestamp       time.Time         `json:"timestamp"`
	Executed        int               `json:"executed"`
	Successful      int               `json:"successful"`
	Failed          int               `json:"failed"`
	ExecutionTimeMs int64             `json:"execution_time_ms"`
	Results         []ExecutionResult `json:"results"`
}
