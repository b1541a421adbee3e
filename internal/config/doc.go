// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

/*
Package config loads and validates the service configuration.

# Configuration Sources

Koanf layers three sources, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/coursemate/config.yaml
 3. Environment variables (explicitly mapped, unknown variables are ignored)

# Environment Variables

HTTP server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8080)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
  - HTTP_MAX_BODY_BYTES: request body limit (default: 64KiB)

Artifacts:
  - MODEL_URL, MAPPINGS_URL, CATALOG_URL: http(s) URL, file:// URL or local path (required)
  - CACHE_DIR: Badger directory for downloaded artifacts (default: ./data/cache)
  - ARTIFACT_CACHE_ENABLED: cache downloads locally (default: true)
  - ARTIFACT_FETCH_TIMEOUT: per-attempt HTTP timeout (default: 60s)
  - ARTIFACT_RETRY_ATTEMPTS: attempts per artifact (default: 4)
  - ARTIFACT_REFRESH_INTERVAL: background cache revalidation, 0 disables (default: 0)

Model:
  - MODEL_BACKEND: onnx or static (default: onnx)
  - ONNXRUNTIME_LIB: path to the onnxruntime shared library
  - MODEL_INPUT_NAME, MODEL_OUTPUT_NAME: tensor names, discovered when empty

Recommendation policy:
  - RECOMMEND_FILTER_COURSE_TYPE: keep only the requested course type (default: true)
  - RECOMMEND_FILTER_MAX_DURATION: keep only courses no longer than requested (default: true)
  - RECOMMEND_INTRO_LIMIT: short intro character limit (default: 200)
  - RECOMMEND_MAX_RESULTS: list length (default: 10)
  - RECOMMEND_MAX_CONCURRENT_INFERENCE: 0 means unbounded
  - RECOMMEND_CACHE_SIZE: memoized predictions, 0 disables (default: 1024)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
