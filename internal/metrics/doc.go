// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

/*
Package metrics defines the Prometheus metrics of the service.

Metrics are registered on the default registry through promauto and exposed
at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommendations_total{outcome}: success, empty, validation_error, internal_error
  - recommendation_results: histogram of list lengths
  - predicted_category_total{category}
  - model_inference_duration_seconds
  - model_inference_errors_total
  - prediction_cache_hits_total, prediction_cache_misses_total

Artifacts:
  - artifact_fetch_total{artifact,origin,result}: origin is cache, remote or local
  - artifact_fetch_duration_seconds{artifact,origin}
  - artifact_size_bytes{artifact}
  - artifacts_ready: 1 once model, mappings and catalog are loaded

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
