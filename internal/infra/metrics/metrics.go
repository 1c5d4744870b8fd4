package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the console's lifecycle and backend metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	StatusTransitionsTotal *prometheus.CounterVec
	CancellationsTotal     *prometheus.CounterVec
	RefundActionsTotal     *prometheus.CounterVec
	RefundReconciledTotal  *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec
}

// New registers every metric on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StatusTransitionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_status_transitions_total",
				Help: "Operator status transitions accepted by the backend",
			},
			[]string{"type", "from", "to"},
		),
		CancellationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_cancellations_total",
				Help: "Operator cancellations accepted by the backend",
			},
			[]string{"payment_method", "refund_required"},
		),
		RefundActionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_refund_actions_total",
				Help: "Refund actions by kind and outcome",
			},
			[]string{"action", "outcome"},
		),
		RefundReconciledTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_refund_reconciled_total",
				Help: "Refund statuses changed by provider reconciliation",
			},
			[]string{"from", "to"},
		),
		BackendRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_request_duration_seconds",
				Help:    "Latency of calls to the order backend",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "code"},
		),
	}
}

func (m *Metrics) StatusTransition(kind, from, to string) {
	if m == nil {
		return
	}
	m.StatusTransitionsTotal.WithLabelValues(kind, from, to).Inc()
}

func (m *Metrics) Cancellation(method string, refundRequired bool) {
	if m == nil {
		return
	}
	m.CancellationsTotal.WithLabelValues(method, strconv.FormatBool(refundRequired)).Inc()
}

func (m *Metrics) RefundAction(action, outcome string) {
	if m == nil {
		return
	}
	m.RefundActionsTotal.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) RefundReconciled(from, to string) {
	if m == nil {
		return
	}
	m.RefundReconciledTotal.WithLabelValues(from, to).Inc()
}

// ObserveBackend records one backend call. code 0 means no response was received.
func (m *Metrics) ObserveBackend(operation string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.BackendRequestDuration.WithLabelValues(operation, strconv.Itoa(code)).Observe(d.Seconds())
}
