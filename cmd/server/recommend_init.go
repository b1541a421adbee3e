// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package main

import (
	"github.com/tomtom215/coursemate/internal/config"
	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/model"
	"github.com/tomtom215/coursemate/internal/recommend"
)

// buildEngineConfig maps the recommend section of the service config onto
// the engine's policy.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	return &recommend.Config{
		FilterCourseType:       r.FilterCourseType,
		FilterMaxDuration:      r.FilterMaxDuration,
		IntroLimit:             r.IntroLimit,
		Ellipsis:               r.Ellipsis,
		MaxResults:             r.MaxResults,
		MaxConcurrentInference: r.MaxConcurrentInference,
		PredictionCacheSize:    r.PredictionCacheSize,
		DurationUnit:           r.DurationUnit,
	}
}

// initEngine builds the engine and warns about catalog rows the model can
// never select.
func initEngine(cfg *config.Config, artifacts *loadedArtifacts, predictor model.Predictor) (*recommend.Engine, error) {
	logger := logging.WithComponent("recommend")

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), artifacts.Registry, artifacts.Catalog, predictor, logger)
	if err != nil {
		return nil, err
	}

	if unknown := recommend.UnknownCategories(artifacts.Registry, artifacts.Catalog); len(unknown) > 0 {
		logger.Warn().Strs("categories", unknown).Msg("Catalog categories the model never predicts; their courses are unreachable")
	}
	if cfg.Recommend.FilterCourseType {
		if unknown := recommend.UnknownCourseTypes(artifacts.Registry, artifacts.Catalog); len(unknown) > 0 {
			logger.Warn().Strs("course_types", unknown).Msg("Catalog course types missing from the mapping; their courses are unreachable")
		}
	}

	logger.Info().
		Bool("filter_course_type", cfg.Recommend.FilterCourseType).
		Bool("filter_max_duration", cfg.Recommend.FilterMaxDuration).
		Int("max_results", cfg.Recommend.MaxResults).
		Int("prediction_cache_size", cfg.Recommend.PredictionCacheSize).
		Msg("Recommendation engine ready")
	return engine, nil
}
