package metrics

import "time"

// Sink records pipeline metrics. All methods must be non-blocking and
// fire-and-forget; a nil-safe NoopSink stands in when metrics are disabled.
type Sink interface {
	BatchCompleted(pipeline string, successful, failed int, duration time.Duration)
	BatchCritical(pipeline string)
	JobAttempt(pipeline string, success bool)
	WebhookReceived(trigger string)
	WebhookActionOutcome(action string, success bool)
}
