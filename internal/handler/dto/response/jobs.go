package response

import (
	"time"

	"github.com/google/uuid"

	"opsboard/internal/usecase/queries"
)

type ScheduledTicketResponse struct {
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

type ScheduledReportResponse struct {
	ID             uuid.UUID                  `json:"id"`
	OwnerID        uuid.UUID                  `json:"owner_id"`
	Name           string                     `json:"name"`
	IsActive       bool                       `json:"is_active"`
	CronExpression string                     `json:"cron_expression"`
	NextExecution  *time.Time                 `json:"next_execution,omitempty"`
	LastExecution  *time.Time                 `json:"last_execution,omitempty"`
	ExecutionCount int32                      `json:"execution_count"`
	PhoneNumber    string                     `json:"phone_number"`
	ReportType     string                     `json:"report_type"`
	Settings       queries.ReportSettingsView `json:"settings"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

func FromTicketView(view *queries.ScheduledTicketView) *ScheduledTicketResponse {
	return &ScheduledTicketResponse{
		ID:             view.ID,
		OwnerID:        view.OwnerID,
		Name:           view.Name,
		IsActive:       view.IsActive,
		CronExpression: view.CronExpression,
		NextExecution:  view.NextExecution,
		LastExecution:  view.LastExecution,
		ExecutionCount: view.ExecutionCount,
		Title:          view.Title,
		Content:        view.Content,
		Urgency:        view.Urgency,
		Impact:         view.Impact,
		Priority:       view.Priority,
		EntityID:       view.EntityID,
		AssigneeID:     view.AssigneeID,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

func FromReportView(view *queries.ScheduledReportView) *ScheduledReportResponse {
	return &ScheduledReportResponse{
		ID:             view.ID,
		OwnerID:        view.OwnerID,
		Name:           view.Name,
		IsActive:       view.IsActive,
		CronExpression: view.CronExpression,
		NextExecution:  view.NextExecution,
		LastExecution:  view.LastExecution,
		ExecutionCount: view.ExecutionCount,
		PhoneNumber:    view.PhoneNumber,
		ReportType:     view.ReportType,
		Settings:       view.Settings,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}
