package request

import (
	"github.com/google/uuid"
)

type ReportSettingsPayload struct {
	IncludeAlerts  bool   `json:"include_alerts"`
	IncludeBackups bool   `json:"include_backups"`
	IncludeTickets bool   `json:"include_tickets"`
	CustomText     string `json:"custom_text,omitempty"`
}

type CreateScheduledReportRequest struct {
	OwnerID        uuid.UUID              `json:"owner_id" binding:"required"`
	Name           string                 `json:"name" binding:"required"`
	CronExpression string                 `json:"cron_expression" binding:"required"`
	IsActive       *bool                  `json:"is_active,omitempty"`
	PhoneNumber    string                 `json:"phone_number" binding:"required"`
	ReportType     string                 `json:"report_type" binding:"required"`
	Settings       *ReportSettingsPayload `json:"settings,omitempty"`
}

type UpdateScheduledReportRequest struct {
	Name           *string                `json:"name,omitempty"`
	CronExpression *string                `json:"cron_expression,omitempty"`
	IsActive       *bool                  `json:"is_active,omitempty"`
	PhoneNumber    *string                `json:"phone_number,omitempty"`
	ReportType     *string                `json:"report_type,omitempty"`
	Settings       *ReportSettingsPayload `json:"settings,omitempty"`
}
