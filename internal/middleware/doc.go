// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

/*
Package middleware provides HTTP middleware components for the API.

All middleware uses the func(http.Handler) http.Handler shape so it plugs
into chi's r.Use directly.

Key Components:

  - RequestID: X-Request-ID propagation and a request-scoped logger
  - PrometheusMetrics: request counts, latency and in-flight gauge, labelled
    by chi route pattern to keep cardinality bounded
  - Compression: Brotli or gzip response encoding chosen from Accept-Encoding
  - SecurityHeaders: nosniff, frame denial, referrer policy, HSTS behind TLS
  - MaxBodyBytes: request body size limit

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Compression)
	r.Use(middleware.MaxBodyBytes(1 << 20))
*/
package middleware
