// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/coursemate/internal/catalog"
	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/mapping"
	"github.com/tomtom215/coursemate/internal/model"
	"github.com/tomtom215/coursemate/internal/recommend"
)

// newTestEngine builds an engine whose model always predicts "Data Science".
func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	predictor, err := model.NewOneHotPredictor(0, 2)
	if err != nil {
		t.Fatalf("NewOneHotPredictor() error = %v", err)
	}
	return newTestEngineWith(t, predictor)
}

// newTestEngineWith builds the test engine around predictor, which must
// report two classes.
func newTestEngineWith(t *testing.T, predictor model.Predictor) *recommend.Engine {
	t.Helper()

	reg, err := mapping.New(
		map[string]int{"Biology": 0, "Machine Learning": 1},
		map[string]int{"Course": 0, "Project": 1},
		map[int]string{0: "Data Science", 1: "Life Sciences"},
		map[int]float64{4: -1.0, 8: 0.0, 12: 1.0},
	)
	if err != nil {
		t.Fatalf("mapping.New() error = %v", err)
	}

	cat := catalog.New([]catalog.CourseRecord{
		{Title: "Deep Learning", ShortIntro: strings.Repeat("d", 250), URL: "https://example.com/dl", Category: "Data Science", SubCategory: "Machine Learning", CourseType: "Course", Duration: 6},
		{Title: "ML Basics", ShortIntro: "basics", URL: "https://example.com/ml", Category: "Data Science", SubCategory: "Machine Learning", CourseType: "Course", Duration: 2},
		{Title: "ML Capstone", ShortIntro: "capstone", URL: "https://example.com/cap", Category: "Data Science", SubCategory: "Machine Learning", CourseType: "Project", Duration: 3},
		{Title: "Cells", ShortIntro: "cells", URL: "https://example.com/cells", Category: "Life Sciences", SubCategory: "Biology", CourseType: "Course", Duration: 4},
	})

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), reg, cat, predictor, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// fakeRecommender returns a fixed result or error.
type fakeRecommender struct {
	result *recommend.Result
	err    error
	got    recommend.Request
}

func (f *fakeRecommender) Recommend(_ context.Context, req recommend.Request) (*recommend.Result, error) {
	f.got = req
	return f.result, f.err
}

func (f *fakeRecommender) Options() recommend.Options {
	return recommend.Options{Subcategories: []string{"Biology"}, CourseTypes: []string{"Course"}, Durations: []int{4}, DurationUnit: "weeks"}
}

// newTestServer serves the full router around engine.
func newTestServer(t *testing.T, engine Recommender) (*httptest.Server, *Handler) {
	t.Helper()
	h := NewHandler(engine, "test", 0)
	h.SetReady(true)
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	srv := httptest.NewServer(NewRouter(h, NewChiMiddleware(cfg), 0).SetupChi())
	t.Cleanup(srv.Close)
	return srv, h
}

// panickingPredictor panics on every Predict call.
type panickingPredictor struct{}

func (panickingPredictor) Predict(context.Context, []float32) ([]float32, error) {
	panic("tensor shape mismatch")
}

func (panickingPredictor) NumClasses() int { return 2 }

func (panickingPredictor) Close() error { return nil }

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
