package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts gateway operations by name and outcome.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the gateway collectors against registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scgateway_db_operations_total",
		Help: "Total gateway operations partitioned by operation and result.",
	}, []string{"op", "result"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scgateway_db_operation_duration_seconds",
		Help:    "Duration in seconds of gateway operations, including connection setup.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	registerer.MustRegister(operations, duration)
	return &Metrics{operations: operations, duration: duration}
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.operations.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
