package response

import (
	"time"

	"opsboard/internal/analytics"
)

type ActivityEventResponse struct {
	Kind      string    `json:"kind"`
	Pipeline  string    `json:"pipeline,omitempty"`
	Trigger   string    `json:"trigger,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func FromActivityEvent(ev analytics.Event) *ActivityEventResponse {
	return &ActivityEventResponse{
		Kind:      ev.Kind,
		Pipeline:  ev.Pipeline,
		Trigger:   ev.Trigger,
		Detail:    ev.Detail,
		Timestamp: ev.Timestamp,
	}
}
