package server

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the Prometheus collectors of a Server.
type Metrics struct {
	requests    *prometheus.CounterVec
	oracleCalls prometheus.Counter
	duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "truncate_requests_total",
				Help: "Truncation requests by outcome (truncated, fits, overflow, error).",
			},
			[]string{"outcome"},
		),
		oracleCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "truncate_oracle_calls_total",
			Help: "Height measurements made while serving requests.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "truncate_request_duration_seconds",
			Help:    "Time spent truncating one request.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.requests, m.oracleCalls, m.duration)
	return m
}
