package webhook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/domain/webhook"
)

func TestParseAlert_EmptyBodySynthesizesPlaceholder(t *testing.T) {
	for _, body := range [][]byte{nil, {}, []byte("  \n\t ")} {
		alert, err := webhook.ParseAlert(body)
		require.NoError(t, err)
		assert.Equal(t, "Test problem", alert.Subject)
		assert.Equal(t, "test-host", alert.Host)
		assert.Equal(t, "information", alert.Severity)
		assert.Equal(t, "0", alert.EventID)
		assert.Equal(t, "1", alert.Status)
		assert.Equal(t, webhook.TriggerProblemCreated, alert.TriggerTypeOf())
	}
}

func TestParseAlert_MalformedBody(t *testing.T) {
	_, err := webhook.ParseAlert([]byte("this is not json"))
	assert.Error(t, err)
}

func TestParseAlert_FieldFallbacks(t *testing.T) {
	alert, err := webhook.ParseAlert([]byte(`{
		"problem_name": "Disk full",
		"host_name": "srv-01",
		"severity": "high",
		"event_id": "42",
		"status": "1"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Disk full", alert.Subject)
	assert.Equal(t, "srv-01", alert.Host)
	assert.Equal(t, "42", alert.EventID)
}

func TestParseAlert_PrimaryFieldsWinOverFallbacks(t *testing.T) {
	alert, err := webhook.ParseAlert([]byte(`{
		"subject": "Primary",
		"problem_name": "Fallback",
		"host": "host-a",
		"host_name": "host-b"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Primary", alert.Subject)
	assert.Equal(t, "host-a", alert.Host)
}

func TestParseAlert_NumericFields(t *testing.T) {
	alert, err := webhook.ParseAlert([]byte(`{
		"subject": "CPU load",
		"eventid": 9001,
		"triggerid": 17,
		"status": 0
	}`))
	require.NoError(t, err)
	assert.Equal(t, "9001", alert.EventID)
	assert.Equal(t, "17", alert.TriggerID)
	assert.Equal(t, "0", alert.Status)
}

func TestTriggerTypeOf(t *testing.T) {
	tests := []struct {
		status string
		want   webhook.TriggerType
	}{
		{"0", webhook.TriggerProblemResolved},
		{"1", webhook.TriggerProblemCreated},
		{"2", webhook.TriggerProblemCreated},
		{"", webhook.TriggerProblemCreated},
		{"resolved", webhook.TriggerProblemCreated},
	}
	for _, tt := range tests {
		alert := webhook.Alert{Status: tt.status}
		assert.Equal(t, tt.want, alert.TriggerTypeOf(), "status %q", tt.status)
	}
}
