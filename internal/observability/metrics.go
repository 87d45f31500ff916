package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the dashboard service.
type Metrics struct {
	AggregateRequests *prometheus.CounterVec // labels: outcome={ok,empty,invalid}
	ChartRenders      *prometheus.CounterVec // labels: chart={fire_area,pixel_count}, outcome={success,error}
	ChartRenderTime   prometheus.Histogram
	DatasetRows       prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AggregateRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wildfires",
			Name:      "aggregate_requests_total",
			Help:      "Filter-and-aggregate computations by outcome.",
		}, []string{"outcome"}),
		ChartRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wildfires",
			Name:      "chart_renders_total",
			Help:      "Server-side chart renders by chart and outcome.",
		}, []string{"chart", "outcome"}),
		ChartRenderTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wildfires",
			Name:      "chart_render_duration_seconds",
			Help:      "Duration of a single chart PNG render.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "wildfires",
			Name:      "dataset_rows",
			Help:      "Number of records loaded from the source CSV at startup.",
		}),
	}

	prometheus.MustRegister(
		m.AggregateRequests,
		m.ChartRenders,
		m.ChartRenderTime,
		m.DatasetRows,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AggregateRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "wildfires", Name: "aggregate_requests_total"}, []string{"outcome"}),
		ChartRenders:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "wildfires", Name: "chart_renders_total"}, []string{"chart", "outcome"}),
		ChartRenderTime:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "wildfires", Name: "chart_render_duration_seconds"}),
		DatasetRows:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "wildfires", Name: "dataset_rows"}),
	}
}
