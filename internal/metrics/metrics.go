// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeEmpty           = "empty"
	OutcomeValidationError = "validation_error"
	OutcomeInternalError   = "internal_error"
)

// Artifact origins.
const (
	OriginCache  = "cache"
	OriginRemote = "remote"
	OriginLocal  = "local"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of courses returned per successful recommendation",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10, 20, 50},
		},
	)

	PredictedCategoryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predicted_category_total",
			Help: "Total number of predictions per category",
		},
		[]string{"category"},
	)

	InferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "model_inference_duration_seconds",
			Help:    "Model inference latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		},
	)

	InferenceErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "model_inference_errors_total",
			Help: "Total number of failed model invocations",
		},
	)

	PredictionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prediction_cache_hits_total",
			Help: "Total number of predictions served from the cache",
		},
	)

	PredictionCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prediction_cache_misses_total",
			Help: "Total number of predictions that required inference",
		},
	)

	PredictionCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "prediction_cache_entries",
			Help: "Number of feature vectors held in the prediction cache",
		},
	)

	HTTPPanicsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Total number of handler panics turned into 500 responses",
		},
	)

	// Artifact Metrics
	ArtifactFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artifact_fetch_total",
			Help: "Total number of artifact loads by origin and result",
		},
		[]string{"artifact", "origin", "result"},
	)

	ArtifactFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artifact_fetch_duration_seconds",
			Help:    "Artifact load duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"artifact", "origin"},
	)

	ArtifactSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "artifact_size_bytes",
			Help: "Size of the most recently loaded artifact in bytes",
		},
		[]string{"artifact"},
	)

	ArtifactsReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artifacts_ready",
			Help: "1 when the model, mappings and catalog are loaded",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome of one recommendation. category
// and results are only meaningful for successful outcomes.
func RecordRecommendation(outcome, category string, results int) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeSuccess && outcome != OutcomeEmpty {
		return
	}
	RecommendationResults.Observe(float64(results))
	if category != "" {
		PredictedCategoryTotal.WithLabelValues(category).Inc()
	}
}

// RecordInference records one model invocation.
func RecordInference(duration time.Duration, err error) {
	InferenceDuration.Observe(duration.Seconds())
	if err != nil {
		InferenceErrors.Inc()
	}
}

// RecordPredictionCache records a prediction cache lookup.
func RecordPredictionCache(hit bool) {
	if hit {
		PredictionCacheHits.Inc()
	} else {
		PredictionCacheMisses.Inc()
	}
}

// SetPredictionCacheEntries records the prediction cache size.
func SetPredictionCacheEntries(n int) {
	PredictionCacheEntries.Set(float64(n))
}

// RecordPanic counts a recovered handler panic.
func RecordPanic() {
	HTTPPanicsTotal.Inc()
}

// RecordArtifactFetch records one artifact load.
func RecordArtifactFetch(artifact, origin string, duration time.Duration, size int, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	ArtifactFetchTotal.WithLabelValues(artifact, origin, result).Inc()
	ArtifactFetchDuration.WithLabelValues(artifact, origin).Observe(duration.Seconds())
	if err == nil {
		ArtifactSize.WithLabelValues(artifact).Set(float64(size))
	}
}

// SetArtifactsReady flips the readiness gauge.
func SetArtifactsReady(ready bool) {
	if ready {
		ArtifactsReady.Set(1)
	} else {
		ArtifactsReady.Set(0)
	}
}

// RecordAppInfo publishes the build version.
func RecordAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
