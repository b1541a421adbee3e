// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package api

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/coursemate/internal/recommend"
)

// Recommender is the engine surface the handlers need.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Result, error)
	Options() recommend.Options
}

// Handler serves the HTTP API.
type Handler struct {
	engine    Recommender
	version   string
	startTime time.Time
	ready     atomic.Bool

	// requestTimeout bounds one recommendation. 0 means no bound.
	requestTimeout time.Duration
}

// NewHandler creates a handler around engine. The handler reports not ready
// until SetReady(true) is called.
func NewHandler(engine Recommender, version string, requestTimeout time.Duration) *Handler {
	return &Handler{
		engine:         engine,
		version:        version,
		startTime:      time.Now(),
		requestTimeout: requestTimeout,
	}
}

// SetReady flips the readiness probe.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Ready reports the readiness probe state.
func (h *Handler) Ready() bool {
	return h.ready.Load()
}
