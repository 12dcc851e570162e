package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements AssertionMetrics with a Prometheus
// counter labelled by descriptor kind and strategy.
type PrometheusMetrics struct {
	failures *prometheus.CounterVec
}

// NewPrometheusMetrics creates the counter and registers it with
// reg. A nil reg skips registration.
func NewPrometheusMetrics(
	reg prometheus.Registerer,
) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "assertions",
				Name:      "failures_total",
				Help:      "Number of failed assertions by kind and comparison strategy.",
			},
			[]string{"kind", "strategy"},
		),
	}

	if reg != nil {
		if err := reg.Register(m.failures); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *PrometheusMetrics) RecordFailure(kind, strategy string) {
	if strategy == "" {
		strategy = "standard"
	}
	m.failures.WithLabelValues(kind, strategy).Inc()
}

// Collector exposes the underlying counter, for hosts that manage
// registration themselves.
func (m *PrometheusMetrics) Collector() prometheus.Collector {
	return m.failures
}
