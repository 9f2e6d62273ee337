package webhook

import (
	"bytes"
	"encoding/json"
	"strconv"

	"opsboard/internal/pkg/errs"
)

// Alert is the normalized inbound payload. Vendors are inconsistent about
// field names, so parsing accepts both spellings per field.
type Alert struct {
	Subject   string
	Host      string
	Severity  string
	EventID   string
	TriggerID string
	Status    string
}

// flexString tolerates JSON strings and numbers in the same field.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type alertEnvelope struct {
	Subject     flexString `json:"subject"`
	ProblemName flexString `json:"problem_name"`
	Host        flexString `json:"host"`
	HostName    flexString `json:"host_name"`
	Severity    flexString `json:"severity"`
	EventID     flexString `json:"eventid"`
	EventIDAlt  flexString `json:"event_id"`
	TriggerID   flexString `json:"triggerid"`
	Status      flexString `json:"status"`
}

// ParseAlert normalizes an inbound alert body. An empty body synthesizes a
// benign placeholder payload instead of failing; Zabbix test invocations and
// manual curls both send empty bodies.
func ParseAlert(body []byte) (Alert, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Alert{
			Subject:  "Test problem",
			Host:     "test-host",
			Severity: "information",
			EventID:  "0",
			Status:   "1",
		}, nil
	}

	var env alertEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Alert{}, errs.Wrap(err, "parse alert payload")
	}

	return Alert{
		Subject:   coalesce(env.Subject, env.ProblemName),
		Host:      coalesce(env.Host, env.HostName),
		Severity:  string(env.Severity),
		EventID:   coalesce(env.EventID, env.EventIDAlt),
		TriggerID: string(env.TriggerID),
		Status:    string(env.Status),
	}, nil
}

// TriggerTypeOf maps the alert status field to a trigger type.
// 0 means resolved, 1 means created; anything else falls back to created.
func (a Alert) TriggerTypeOf() TriggerType {
	if n, err := strconv.Atoi(a.Status); err == nil && n == 0 {
		return TriggerProblemResolved
	}
	return TriggerProblemCreated
}

func coalesce(values ...flexString) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}
