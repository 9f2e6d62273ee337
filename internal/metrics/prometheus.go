package metrics

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink implements Sink on the Prometheus client library.
// Registration errors are logged, never propagated.
type PrometheusSink struct {
	batchesTotal  *prometheus.CounterVec
	batchDuration *prometheus.HistogramVec
	batchJobs     *prometheus.CounterVec
	jobAttempts   *prometheus.CounterVec
	webhooksTotal *prometheus.CounterVec
	actionsTotal  *prometheus.CounterVec
}

func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	s := &PrometheusSink{
		batchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "opsboard_batches_total",
			Help: "Total batch invocations by pipeline and outcome.",
		}, []string{"pipeline", "outcome"}),
		batchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "opsboard_batch_duration_seconds",
			Help:    "Wall-clock duration of each batch invocation.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"pipeline"}),
		batchJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "opsboard_batch_jobs_total",
			Help: "Jobs processed per batch by pipeline and result.",
		}, []string{"pipeline", "result"}),
		jobAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "opsboard_job_attempts_total",
			Help: "Per-job attempts by pipeline and success.",
		}, []string{"pipeline", "success"}),
		webhooksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "opsboard_webhooks_received_total",
			Help: "Inbound webhook events by trigger type.",
		}, []string{"trigger"}),
		actionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "opsboard_webhook_actions_total",
			Help: "Fan-out action attempts by action and success.",
		}, []string{"action", "success"}),
	}

	for _, c := range []prometheus.Collector{
		s.batchesTotal, s.batchDuration, s.batchJobs, s.jobAttempts, s.webhooksTotal, s.actionsTotal,
	} {
		if err := reg.Register(c); err != nil {
			slog.Warn("failed to register metric", "error", err)
		}
	}
	return s
}

func (s *PrometheusSink) BatchCompleted(pipeline string, successful, failed int, duration time.Duration) {
	s.batchesTotal.WithLabelValues(pipeline, "completed").Inc()
	s.batchDuration.WithLabelValues(pipeline).Observe(duration.Seconds())
	s.batchJobs.WithLabelValues(pipeline, "successful").Add(float64(successful))
	s.batchJobs.WithLabelValues(pipeline, "failed").Add(float64(failed))
}

func (s *PrometheusSink) BatchCritical(pipeline string) {
	s.batchesTotal.WithLabelValues(pipeline, "critical_error").Inc()
}

func (s *PrometheusSink) JobAttempt(pipeline string, success bool) {
	s.jobAttempts.WithLabelValues(pipeline, strconv.FormatBool(success)).Inc()
}

func (s *PrometheusSink) WebhookReceived(trigger string) {
	s.webhooksTotal.WithLabelValues(trigger).Inc()
}

func (s *PrometheusSink) WebhookActionOutcome(action string, success bool) {
	s.actionsTotal.WithLabelValues(action, strconv.FormatBool(success)).Inc()
}

var _ Sink = (*PrometheusSink)(nil)
