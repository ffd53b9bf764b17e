// Package metrics provides Prometheus metrics for the fitness tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus collectors of the tracker.
type Manager struct {
	namespace       string
	subsystem       string
	latencyBuckets  []float64
	caloriesBuckets []float64
	distanceBuckets []float64
	registry        prometheus.Registerer

	// Training metrics
	trainingsProcessed *prometheus.CounterVec
	trainingErrors     *prometheus.CounterVec
	caloriesSpent      *prometheus.HistogramVec
	distanceCovered    *prometheus.HistogramVec
	processingLatency  prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "ftracker",
		subsystem:       "trainings",
		latencyBuckets:  []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100},
		caloriesBuckets: []float64{50, 100, 200, 300, 500, 750, 1000, 1500, 2000},
		distanceBuckets: []float64{0.5, 1, 2, 5, 10, 21.1, 42.2, 100},
		registry:        prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.trainingsProcessed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "processed_total",
		Help:      "Total number of trainings processed by workout type",
	}, []string{"workout_type"})

	m.trainingErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Total number of rejected packages by workout type and reason",
	}, []string{"workout_type", "reason"})

	m.caloriesSpent = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calories_kcal",
		Help:      "Distribution of spent calories per training",
		Buckets:   m.caloriesBuckets,
	}, []string{"workout_type"})

	m.distanceCovered = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "distance_km",
		Help:      "Distribution of covered distance per training",
		Buckets:   m.distanceBuckets,
	}, []string{"workout_type"})

	m.processingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "processing_latency_milliseconds",
		Help:      "Time spent turning a package into a report",
		Buckets:   m.latencyBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.latencyBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordTraining records a processed training with its calories and distance.
func (m *Manager) RecordTraining(workoutType string, calories, distance float64) {
	m.trainingsProcessed.WithLabelValues(workoutType).Inc()
	m.caloriesSpent.WithLabelValues(workoutType).Observe(calories)
	m.distanceCovered.WithLabelValues(workoutType).Observe(distance)
}

// RecordTrainingError records a rejected package.
func (m *Manager) RecordTrainingError(workoutType, reason string) {
	m.trainingErrors.WithLabelValues(workoutType, reason).Inc()
}

// RecordProcessingLatency records processing latency in milliseconds.
func (m *Manager) RecordProcessingLatency(latencyMs float64) {
	m.processingLatency.Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request with its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// Default returns the global manager bound to the custom registry.
func Default() *Manager {
	return globalManager
}

// RecordTraining records a processed training on the global manager.
func RecordTraining(workoutType string, calories, distance float64) {
	globalManager.RecordTraining(workoutType, calories, distance)
}

// RecordTrainingError records a rejected package on the global manager.
func RecordTrainingError(workoutType, reason string) {
	globalManager.RecordTrainingError(workoutType, reason)
}

// RecordProcessingLatency records processing latency on the global manager.
func RecordProcessingLatency(latencyMs float64) {
	globalManager.RecordProcessingLatency(latencyMs)
}

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
