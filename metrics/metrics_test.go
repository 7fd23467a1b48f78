package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWaitlistMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWaitlistMetrics(reg)

	m.ObserveSubmission(ResultSubmitted)
	m.ObserveSubmission(ResultSubmitted)
	m.ObserveSubmission(ResultStoreError)
	m.ObserveInsert("supabase", 0.2)
	m.ObserveAlert("sms", nil)
	m.ObserveAlert("email", errors.New("rejected"))
	m.ObserveModalOpen()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues(ResultSubmitted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues(ResultStoreError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.alerts.WithLabelValues("email", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.modalOpens))
	assert.Equal(t, 1, testutil.CollectAndCount(m.insertLatency))
}

func TestWaitlistMetricsNilSafe(t *testing.T) {
	var m *WaitlistMetrics
	m.ObserveSubmission(ResultSubmitted)
	m.ObserveInsert("sqlite", 0.1)
	m.ObserveAlert("sms", nil)
	m.ObserveModalOpen()
}
