// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/coursemate/internal/cache"
	"github.com/tomtom215/coursemate/internal/catalog"
	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/mapping"
	"github.com/tomtom215/coursemate/internal/metrics"
	"github.com/tomtom215/coursemate/internal/model"
	"github.com/tomtom215/coursemate/internal/validation"
)

// featureKey is a feature vector used as a cache key.
type featureKey [model.NumFeatures]float32

// Engine produces recommendations from an immutable registry, catalog and
// model. It is safe for concurrent use.
type Engine struct {
	config    Config
	logger    zerolog.Logger
	registry  *mapping.Registry
	catalog   *catalog.Catalog
	predictor model.Predictor

	// predictions memoizes feature vector -> class index; nil when disabled
	predictions *cache.LRU[featureKey, int]

	// inference bounds concurrent model calls; nil when unbounded
	inference *semaphore.Weighted
}

// NewEngine creates an engine. It fails with ErrIncompatible when the
// predictor's class count differs from the registry's category count.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, reg *mapping.Registry, cat *catalog.Catalog, predictor model.Predictor, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if reg == nil || cat == nil || predictor == nil {
		return nil, errors.New("registry, catalog and predictor are required")
	}
	if got, want := predictor.NumClasses(), reg.NumCategories(); got != want {
		return nil, fmt.Errorf("%w: model has %d classes, registry has %d categories", ErrIncompatible, got, want)
	}

	e := &Engine{
		config:    *cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		registry:  reg,
		catalog:   cat,
		predictor: predictor,
	}
	if cfg.PredictionCacheSize > 0 {
		e.predictions = cache.NewLRU[featureKey, int](cfg.PredictionCacheSize)
	}
	if cfg.MaxConcurrentInference > 0 {
		e.inference = semaphore.NewWeighted(int64(cfg.MaxConcurrentInference))
	}
	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Options lists the accepted sub-categories, course types and durations.
func (e *Engine) Options() Options {
	return Options{
		Subcategories: e.registry.Subcategories(),
		CourseTypes:   e.registry.CourseTypes(),
		Durations:     e.registry.Durations(),
		DurationUnit:  e.config.DurationUnit,
	}
}

// Recommend runs the pipeline for one request. Errors are *ValidationError
// or *InternalError.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	logger := e.logger.With().Str("request_id", logging.RequestIDFromContext(ctx)).Logger()

	res, err := e.recommend(ctx, req.trimmed())

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.RecordRecommendation(metrics.OutcomeValidationError, "", 0)
		logger.Debug().Err(err).Str("reason", verr.Reason).Msg("rejected recommendation request")
		return nil, err
	case err != nil:
		metrics.RecordRecommendation(metrics.OutcomeInternalError, "", 0)
		logger.Error().Err(err).Msg("recommendation failed")
		return nil, err
	}

	outcome := metrics.OutcomeSuccess
	if len(res.Courses) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(outcome, res.PredictedCategory, len(res.Courses))

	logger.Debug().
		Str("category", res.PredictedCategory).
		Int("returned", len(res.Courses)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")
	return res, nil
}

func (e *Engine) recommend(ctx context.Context, req Request) (*Result, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, newValidationError(ReasonMissingField, nil, verr.Fields()...)
	}

	duration, err := ParseDuration(req.Duration)
	if err != nil {
		return nil, newValidationError(ReasonInvalidDuration, err, "duration")
	}

	features, err := e.encode(req, duration)
	if err != nil {
		return nil, err
	}

	category, err := e.classify(ctx, features)
	if err != nil {
		return nil, err
	}

	return &Result{
		PredictedCategory: category,
		Courses:           e.selectCourses(category, req, duration),
	}, nil
}

// ParseDuration parses an exact base-10 integer. Fractions, exponents and
// surrounding text are rejected.
func ParseDuration(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("duration %q is not an integer", s)
	}
	return n, nil
}

// encode builds the feature vector [sub-category, course type, duration].
// The order is the column order the model was trained with.
func (e *Engine) encode(req Request, duration int) (featureKey, error) {
	var unknown []string

	sub, ok := e.registry.EncodeSubcategory(req.Subcategory)
	if !ok {
		unknown = append(unknown, "subcategory")
	}
	courseType, ok := e.registry.EncodeCourseType(req.CourseType)
	if !ok {
		unknown = append(unknown, "course_type")
	}
	scaled, ok := e.registry.ScaleDuration(duration)
	if !ok {
		unknown = append(unknown, "duration")
	}

	if len(unknown) > 0 {
		return featureKey{}, newValidationError(ReasonUnrecognizedInput, nil, unknown...)
	}
	return featureKey{float32(sub), float32(courseType), float32(scaled)}, nil
}

// classify returns the category label the model assigns to features.
func (e *Engine) classify(ctx context.Context, features featureKey) (string, error) {
	idx, err := e.predict(ctx, features)
	if err != nil {
		return "", err
	}

	label, ok := e.registry.DecodeCategory(idx)
	if !ok {
		return "", &InternalError{
			Op:  "decode category",
			Err: fmt.Errorf("class index %d has no label in a registry of %d categories", idx, e.registry.NumCategories()),
		}
	}
	return label, nil
}

func (e *Engine) predict(ctx context.Context, features featureKey) (int, error) {
	if e.predictions != nil {
		if idx, ok := e.predictions.Get(features); ok {
			metrics.RecordPredictionCache(true)
			return idx, nil
		}
		metrics.RecordPredictionCache(false)
	}

	if e.inference != nil {
		if err := e.inference.Acquire(ctx, 1); err != nil {
			return 0, &InternalError{Op: "acquire inference slot", Err: err}
		}
		defer e.inference.Release(1)
	}

	start := time.Now()
	scores, err := e.predictor.Predict(ctx, features[:])
	metrics.RecordInference(time.Since(start), err)
	if err != nil {
		return 0, &InternalError{Op: "predict", Err: err}
	}

	idx, ok := model.Argmax(scores)
	if !ok {
		return 0, &InternalError{Op: "predict", Err: fmt.Errorf("model returned no usable scores (%d values)", len(scores))}
	}

	if e.predictions != nil {
		e.predictions.Add(features, idx)
		metrics.SetPredictionCacheEntries(e.predictions.Len())
	}
	return idx, nil
}
