// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/coursemate/internal/middleware"
)

// Route paths.
const (
	RouteRecommendLegacy = "/api/recommend"
	RouteRecommend       = "/api/v1/recommend"
	RouteOptions         = "/api/v1/options"
	RouteHealthLive      = "/api/v1/health/live"
	RouteHealthReady     = "/api/v1/health/ready"
)

// apiRoutes bounds the endpoint label of rate limit metrics.
var apiRoutes = map[string]bool{
	RouteRecommendLegacy: true,
	RouteRecommend:       true,
	RouteOptions:         true,
}

// defaultMaxBodyBytes applies when the router is built without a limit.
const defaultMaxBodyBytes = 64 << 10

// Router wires handlers and middleware into a Chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	maxBodyBytes  int64
}

// NewRouter creates a router. A nil chiMiddleware uses the defaults and a
// non-positive maxBodyBytes uses 64 KiB.
func NewRouter(handler *Handler, chiMiddleware *ChiMiddleware, maxBodyBytes int64) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(nil)
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMiddleware,
		maxBodyBytes:  maxBodyBytes,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recoverer(MsgInternal))
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SecurityHeaders)

	// Probes skip rate limiting and compression.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.Compression)
		r.Use(middleware.MaxBodyBytes(router.maxBodyBytes))

		r.Post(RouteRecommendLegacy, router.handler.Recommend)
		r.Post(RouteRecommend, router.handler.Recommend)
		r.Get(RouteOptions, router.handler.Options)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	return r
}
