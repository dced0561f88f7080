package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments exposed by the API server.
type Metrics struct {
	registry          *prometheus.Registry
	discoveriesTotal  *prometheus.CounterVec
	discoveryDuration prometheus.Histogram
}

// NewMetrics creates the server's metric instruments on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	discoveriesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imagescout_discoveries_total",
			Help: "Total discovery requests by terminal search level and outcome",
		},
		[]string{"level", "outcome"},
	)

	discoveryDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "imagescout_discovery_duration_seconds",
			Help:    "Wall-clock duration of discovery requests",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	registry.MustRegister(discoveriesTotal, discoveryDuration)

	return &Metrics{
		registry:          registry,
		discoveriesTotal:  discoveriesTotal,
		discoveryDuration: discoveryDuration,
	}
}

// ObserveDiscovery records one finished discovery request.
func (m *Metrics) ObserveDiscovery(level, outcome string, elapsed time.Duration) {
	m.discoveriesTotal.WithLabelValues(level, outcome).Inc()
	m.discoveryDuration.Observe(elapsed.Seconds())
}

// Registry exposes the private registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
