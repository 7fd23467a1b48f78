// Package metrics exposes prometheus counters for the waitlist.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission results.
const (
	ResultSubmitted  = "submitted"
	ResultIncomplete = "incomplete"
	ResultStoreError = "store_error"
	ResultDiscarded  = "discarded"
)

// WaitlistMetrics counts submissions, insert latency and lead alerts.
type WaitlistMetrics struct {
	submissions   *prometheus.CounterVec
	insertLatency *prometheus.HistogramVec
	alerts        *prometheus.CounterVec
	modalOpens    prometheus.Counter
}

func NewWaitlistMetrics(reg prometheus.Registerer) *WaitlistMetrics {
	m := &WaitlistMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "venra",
			Subsystem: "waitlist",
			Name:      "submissions_total",
			Help:      "Waitlist submissions by result",
		}, []string{"result"}),
		insertLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "venra",
			Subsystem: "waitlist",
			Name:      "insert_latency_seconds",
			Help:      "Latency of lead inserts by store backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "venra",
			Subsystem: "waitlist",
			Name:      "alerts_total",
			Help:      "New-lead alerts sent to the operator",
		}, []string{"channel", "status"}),
		modalOpens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "venra",
			Subsystem: "waitlist",
			Name:      "modal_opens_total",
			Help:      "Times the waitlist modal was opened",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.insertLatency, m.alerts, m.modalOpens)
	return m
}

func (m *WaitlistMetrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}

func (m *WaitlistMetrics) ObserveInsert(backend string, seconds float64) {
	if m == nil {
		return
	}
	m.insertLatency.WithLabelValues(backend).Observe(seconds)
}

func (m *WaitlistMetrics) ObserveAlert(channel string, err error) {
	if m == nil {
		return
	}
	status := "sent"
	if err != nil {
		status = "failed"
	}
	m.alerts.WithLabelValues(channel, status).Inc()
}

func (m *WaitlistMetrics) ObserveModalOpen() {
	if m == nil {
		return
	}
	m.modalOpens.Inc()
}
