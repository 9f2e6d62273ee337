package metrics

import "time"

// NoopSink discards everything. Used in tests and when metrics are disabled.
type NoopSink struct{}

func NewNoopSink() *NoopSink { return &NoopSink{} }

func (NoopSink) BatchCompleted(string, int, int, time.Duration) {}
func (NoopSink) BatchCritical(string)                           {}
func (NoopSink) JobAttempt(string, bool)                        {}
func (NoopSink) WebhookReceived(string)                         {}
func (NoopSink) WebhookActionOutcome(string, bool)              {}

var _ Sink = (*NoopSink)(nil)
