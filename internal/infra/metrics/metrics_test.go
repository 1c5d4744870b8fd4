package metrics_test

import (
	"testing"
	"time"

	"orderconsole/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.StatusTransition("shipping", "Chờ xác nhận", "Đã xác nhận")
	m.StatusTransition("shipping", "Chờ xác nhận", "Đã xác nhận")
	m.Cancellation("MoMo", true)
	m.RefundAction("auto", "provider_error")
	m.RefundReconciled("processing", "completed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StatusTransitionsTotal.WithLabelValues("shipping", "Chờ xác nhận", "Đã xác nhận")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CancellationsTotal.WithLabelValues("MoMo", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefundActionsTotal.WithLabelValues("auto", "provider_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefundReconciledTotal.WithLabelValues("processing", "completed")))
}

func TestMetrics_BackendHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveBackend("orders.get", 200, 20*time.Millisecond)
	m.ObserveBackend("orders.get", 0, time.Second)

	assert.Equal(t, 2, testutil.CollectAndCount(m.BackendRequestDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.StatusTransition("shipping", "a", "b")
		m.Cancellation("cod", false)
		m.RefundAction("manual_approve", "ok")
		m.RefundReconciled("processing", "failed")
		m.ObserveBackend("orders.get", 500, time.Millisecond)
	})
}
