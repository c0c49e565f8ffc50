package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Generation counters
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidesmith",
			Subsystem: "pipeline",
			Name:      "generations_total",
			Help:      "Total presentation generation requests",
		},
		[]string{"audience", "presentation_type", "status"},
	)

	// Slides produced per generation
	SlidesGenerated = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slidesmith",
			Subsystem: "pipeline",
			Name:      "slides_per_deck",
			Help:      "Number of slides produced per generated deck",
			Buckets:   []float64{1, 2, 3, 5, 8, 10, 15},
		},
		[]string{"audience"},
	)

	// Generation duration histogram
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slidesmith",
			Subsystem: "pipeline",
			Name:      "generation_duration_seconds",
			Help:      "End-to-end deck generation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"audience"},
	)

	// Asset source calls
	AssetSourceCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidesmith",
			Subsystem: "assets",
			Name:      "source_calls_total",
			Help:      "Total asset source queries",
		},
		[]string{"source", "status"},
	)

	// Asset source latency
	AssetSourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slidesmith",
			Subsystem: "assets",
			Name:      "source_duration_seconds",
			Help:      "Asset source query duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"source"},
	)

	// HTTP request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidesmith",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slidesmith",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)
