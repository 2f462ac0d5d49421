package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalysisMetrics tracks the analyzer behind each endpoint.
type AnalysisMetrics struct {
	Duration      *prometheus.HistogramVec
	FailuresTotal *prometheus.CounterVec
}

// NewAnalysisMetrics creates and registers analysis metrics on the given registry.
func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Time spent turning text into an emotion vector.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"endpoint"}),
		FailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "failures_total",
			Help:      "Total number of failed analyses.",
		}, []string{"endpoint"}),
	}

	reg.MustRegister(m.Duration, m.FailuresTotal)
	return m
}

// Observe records one analysis.
func (m *AnalysisMetrics) Observe(endpoint string, elapsed time.Duration, err error) {
	m.Duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	if err != nil {
		m.FailuresTotal.WithLabelValues(endpoint).Inc()
	}
}
