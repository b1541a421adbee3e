// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package recommend

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursemate/internal/catalog"
	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/mapping"
	"github.com/tomtom215/coursemate/internal/model"
)

const (
	classDataScience  = 0
	classLifeSciences = 1
	classArts         = 2
)

func testRegistry(t *testing.T) *mapping.Registry {
	t.Helper()
	reg, err := mapping.New(
		map[string]int{"Biology": 0, "Data Analysis": 1, "Machine Learning": 2},
		map[string]int{"Course": 0, "Professional Certificate": 1, "Project": 2, "Specialization": 3},
		map[int]string{classDataScience: "Data Science", classLifeSciences: "Life Sciences", classArts: "Arts"},
		map[int]float64{4: -0.8, 8: -0.1, 12: 0.6},
	)
	if err != nil {
		t.Fatalf("mapping.New() error = %v", err)
	}
	return reg
}

// testCatalog has unique titles so results can be traced back to records.
func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.CourseRecord{
		{Title: "ML Long", ShortIntro: "long course", URL: "u1", Category: "Data Science", SubCategory: "Machine Learning", CourseType: "Course", Duration: 8},
		{Title: "ML Short A", ShortIntro: "short a", URL: "u2", Category: "Data Science", SubCategory: "Machine Learning", CourseType: "Course", Duration: 2},
		{Title: "ML Project", ShortIntro: "project", URL: "u3", Category: "Data Science", SubCategory: "Machine Learning", CourseType: "Project", Duration: 3},
		{Title: "ML Short B", ShortIntro: "short b", URL: "u4", Category: "Data Science", SubCategory: "Machine Learning", CourseType: "Course", Duration: 2},
		{Title: "ML Too Long", ShortIntro: "too long", URL: "u5", Category: "Data Science", SubCategory: "Machine Learning", CourseType: "Course", Duration: 12},
		{Title: "Analysis", ShortIntro: "analysis", URL: "u6", Category: "Data Science", SubCategory: "Data Analysis", CourseType: "Course", Duration: 1},
		{Title: "Cells", ShortIntro: "cells", URL: "u7", Category: "Life Sciences", SubCategory: "Biology", CourseType: "Project", Duration: 4},
		{Title: "Genes", ShortIntro: "genes", URL: "u8", Category: "Life Sciences", SubCategory: "Biology", CourseType: "Course", Duration: 6},
	})
}

// fakePredictor returns fixed scores, or an error, and may claim a class
// count that differs from the scores it returns.
type fakePredictor struct {
	numClasses int
	scores     []float32
	err        error
	block      chan struct{}
}

func (p *fakePredictor) Predict(ctx context.Context, _ []float32) ([]float32, error) {
	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.scores, nil
}

func (p *fakePredictor) NumClasses() int { return p.numClasses }
func (p *fakePredictor) Close() error    { return nil }

func oneHot(t *testing.T, class int) *model.StaticPredictor {
	t.Helper()
	p, err := model.NewOneHotPredictor(class, 3)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func newTestEngine(t *testing.T, cfg *Config, predictor model.Predictor) *Engine {
	t.Helper()
	return newTestEngineWithCatalog(t, cfg, predictor, testCatalog())
}

func newTestEngineWithCatalog(t *testing.T, cfg *Config, predictor model.Predictor, cat *catalog.Catalog) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, testRegistry(t), cat, predictor, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func titles(res *Result) []string {
	out := make([]string, len(res.Courses))
	for i, c := range res.Courses {
		out[i] = c.Title
	}
	return out
}

func manyCourses(n int) []catalog.CourseRecord {
	out := make([]catalog.CourseRecord, n)
	for i := range out {
		out[i] = catalog.CourseRecord{
			Title:       fmt.Sprintf("Course %02d", i),
			Category:    "Data Science",
			SubCategory: "Machine Learning",
			CourseType:  "Course",
			Duration:    n - i,
		}
	}
	return out
}

func testLogger() zerolog.Logger {
	return logging.NewTestLogger(io.Discard)
}
