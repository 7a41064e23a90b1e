// Package metrics exposes Prometheus counters for the intake pipeline.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

const namespace = "leads"

// Metrics holds the application collectors on its own registry.
type Metrics struct {
	reg         *prometheus.Registry
	submissions *prometheus.CounterVec
	attempts    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	inbox       *prometheus.CounterVec
}

// New creates and registers all collectors, including Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Lead submissions by result code.",
		}, []string{"result"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_attempts_total",
			Help:      "Notification channel attempts by channel and outcome.",
		}, []string{"channel", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "delivery_duration_seconds",
			Help:      "Duration of notification channel attempts.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
		}, []string{"channel"}),
		inbox: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbox_received_total",
			Help:      "Leads received by the inbox webhook by result.",
		}, []string{"result"}),
	}

	m.reg.MustRegister(
		m.submissions, m.attempts, m.duration, m.inbox,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Submission counts one intake request outcome.
func (m *Metrics) Submission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}

// DeliveryAttempt counts one channel attempt and records its duration.
func (m *Metrics) DeliveryAttempt(channel domain.ChannelKind, outcome domain.DeliveryOutcome, took time.Duration) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(channel.String(), outcome.String()).Inc()
	if outcome != domain.OutcomeNotConfigured {
		m.duration.WithLabelValues(channel.String()).Observe(took.Seconds())
	}
}

// InboxReceived counts one inbox webhook outcome.
func (m *Metrics) InboxReceived(result string) {
	if m == nil {
		return
	}
	m.inbox.WithLabelValues(result).Inc()
}
