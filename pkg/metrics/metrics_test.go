package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	return NewWithRegisterer(prometheus.NewRegistry(), "test")
}

func TestObserveHTTPRequest(t *testing.T) {
	m := newTestMetrics()

	m.ObserveHTTPRequest("POST", "/api/v1/shops/{shopId}/queue", 201, 20*time.Millisecond)
	m.ObserveHTTPRequest("POST", "/api/v1/shops/{shopId}/queue", 201, 30*time.Millisecond)
	m.ObserveHTTPRequest("POST", "/api/v1/shops/{shopId}/queue", 409, 10*time.Millisecond)

	ok := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/shops/{shopId}/queue", "201"))
	conflict := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/shops/{shopId}/queue", "409"))

	assert.Equal(t, float64(2), ok)
	assert.Equal(t, float64(1), conflict)
}

func TestObserveQueryCountsErrors(t *testing.T) {
	m := newTestMetrics()

	m.ObserveQuery("query", time.Millisecond, nil)
	m.ObserveQuery("query", time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("query")))
}

func TestQueueCounters(t *testing.T) {
	m := newTestMetrics()

	m.RecordAdmission(OutcomeAdmitted)
	m.RecordAdmission(OutcomeAdmitted)
	m.RecordAdmission(OutcomeRefused)
	m.RecordAdvance(OutcomeEmpty)
	m.RecordExit("no_show")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.QueueAdmissions.WithLabelValues(OutcomeAdmitted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.QueueAdmissions.WithLabelValues(OutcomeRefused)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.QueueAdvances.WithLabelValues(OutcomeEmpty)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.QueueExits.WithLabelValues("no_show")))
}

func TestSetConnections(t *testing.T) {
	m := newTestMetrics()

	m.SetConnections(10, 3, 7)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBConnections.WithLabelValues("in_use")))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.DBConnections.WithLabelValues("idle")))
}

func TestRecordNotification(t *testing.T) {
	m := newTestMetrics()

	m.RecordNotification("queue.called", nil)
	m.RecordNotification("queue.called", errors.New("redis down"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Notifications.WithLabelValues("queue.called", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Notifications.WithLabelValues("queue.called", "error")))
}
