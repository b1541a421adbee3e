// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of the health probes.
type HealthStatus struct {
	Status  string  `json:"status" example:"ok"`
	Version string  `json:"version" example:"1.0.0"`
	Uptime  float64 `json:"uptime_seconds" example:"42.5"`
}

// HealthLive reports that the process is serving HTTP.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.healthStatus("ok"))
}

// HealthReady reports whether the model, mappings and catalog are loaded.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus
// @Failure 503 {object} HealthStatus
// @Router /v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.Ready() {
		respondJSON(w, http.StatusServiceUnavailable, h.healthStatus("starting"))
		return
	}
	respondJSON(w, http.StatusOK, h.healthStatus("ready"))
}

func (h *Handler) healthStatus(status string) HealthStatus {
	return HealthStatus{
		Status:  status,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
}

// Options lists the inputs the engine recognizes.
//
// @Summary List recognized inputs
// @Description Known sub-categories, course types and durations, for populating pickers.
// @Tags Recommend
// @Produce json
// @Success 200 {object} recommend.Options
// @Success 304 "Not modified"
// @Router /v1/options [get]
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	respondCacheableJSON(w, r, h.engine.Options())
}
