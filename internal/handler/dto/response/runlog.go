package response

import (
	"time"

	"github.com/google/uuid"

	"opsboard/internal/usecase/queries"
)

type RunLogResponse struct {
	ID        uuid.UUID      `json:"id"`
	JobName   string         `json:"job_name"`
	Status    string         `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromRunLogView(view *queries.RunLogView) *RunLogResponse {
	return &RunLogResponse{
		ID:        view.ID,
		JobName:   view.JobName,
		Status:    view.Status,
		Details:   view.Details,
		CreatedAt: view.CreatedAt,
	}
}
