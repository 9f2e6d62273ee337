package response

import (
	"time"

	"opsboard/internal/domain/job"
	"opsboard/internal/domain/webhook"
	"opsboard/internal/usecase"
)

// TicketBatchResponse is the contract of the scheduled-tickets trigger
// endpoint. Field names are part of the dashboard API and must not change.
type TicketBatchResponse struct {
	Success         bool                  `json:"success"`
	ExecutedTickets int                   `json:"executed_tickets"`
	Successful      int                   `json:"successful"`
	Failed          int                   `json:"failed"`
	ExecutionTimeMs int64                 `json:"execution_time_ms"`
	Results         []job.ExecutionResult `json:"results"`
	Timestamp       time.Time             `json:"timestamp"`
	Message         string                `json:"message"`
}

type ReportBatchResponse struct {
	Success         bool                  `json:"success"`
	ExecutedReports int                   `json:"executed_reports"`
	Successful      int                   `json:"successful"`
	Failed          int                   `json:"failed"`
	ExecutionTimeMs int64                 `json:"execution_time_ms"`
	Results         []job.ExecutionResult `json:"results"`
	Timestamp       time.Time             `json:"timestamp"`
	Message         string                `json:"message"`
}

// BatchErrorResponse is returned with HTTP 500 when a batch could not start
// or could not record its outcome.
type BatchErrorResponse struct {
	Success         bool      `json:"success"`
	Error           string    `json:"error"`
	ExecutionTimeMs int64     `json:"execution_time_ms"`
	Timestamp       time.Time `json:"timestamp"`
	Message         string    `json:"message"`
}

type WebhookResponse struct {
	Success           bool                         `json:"success"`
	Message           string                       `json:"message"`
	ProcessedWebhooks int                          `json:"processed_webhooks"`
	Results           []webhook.SubscriptionResult `json:"results"`
}

func FromTicketBatch(res *usecase.BatchResult) *TicketBatchResponse {
	return &TicketBatchResponse{
		Success:         res.Success,
		ExecutedTickets: res.Executed,
		Successful:      res.Successful,
		Failed:          res.Failed,
		ExecutionTimeMs: res.ExecutionTimeMs,
		Results:         res.Results,
		Timestamp:       res.Timestamp,
		Message:         res.Message,
	}
}

func FromReportBatch(res *usecase.BatchResult) *ReportBatchResponse {
	return &ReportBatchResponse{
		Success:         res.Success,
		ExecutedReports: res.Executed,
		Successful:      res.Successful,
		Failed:          res.Failed,
		ExecutionTimeMs: res.ExecutionTimeMs,
		Results:         res.Results,
		Timestamp:       res.Timestamp,
		Message:         res.Message,
	}
}

func FromFanout(res *usecase.FanoutResult) *WebhookResponse {
	return &WebhookResponse{
		Success:           res.Success,
		Message:           res.Message,
		ProcessedWebhooks: res.ProcessedWebhooks,
		Results:           res.Results,
	}
}
