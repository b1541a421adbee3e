// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/coursemate/internal/artifact"
	"github.com/tomtom215/coursemate/internal/catalog"
	"github.com/tomtom215/coursemate/internal/config"
	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/mapping"
	"github.com/tomtom215/coursemate/internal/model"
)

// loadedArtifacts is everything the engine is built from.
type loadedArtifacts struct {
	Model    []byte // nil for the static backend
	Registry *mapping.Registry
	Catalog  *catalog.Catalog
}

// openStore opens the Badger artifact cache, or returns nil when caching is
// disabled.
func openStore(cfg *config.Config) (*artifact.Store, error) {
	if !cfg.Artifacts.CacheEnabled {
		logging.Info().Msg("Artifact cache disabled (ARTIFACT_CACHE_ENABLED=false)")
		return nil, nil
	}
	store, err := artifact.OpenStore(cfg.Artifacts.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("open artifact cache: %w", err)
	}
	logging.Info().Str("dir", cfg.Artifacts.CacheDir).Msg("Artifact cache opened")
	return store, nil
}

func newFetcher(cfg *config.Config, store *artifact.Store) *artifact.Fetcher {
	a := cfg.Artifacts
	return artifact.NewFetcher(artifact.Options{
		Store: store,
		Retry: artifact.RetryConfig{
			MaxAttempts: a.RetryAttempts,
			BaseDelay:   a.RetryBaseDelay,
			MaxDelay:    a.RetryMaxDelay,
		},
		FetchTimeout:            a.FetchTimeout,
		RequestsPerSecond:       a.RequestsPerSecond,
		BreakerFailureThreshold: a.BreakerFailureThreshold,
		BreakerTimeout:          a.BreakerTimeout,
	})
}

// loadArtifacts fetches the model, mapping bundle and catalog in parallel.
// The first failure cancels the others and is returned as a *LoadError.
func loadArtifacts(ctx context.Context, fetcher *artifact.Fetcher, cfg *config.Config) (*loadedArtifacts, error) {
	start := time.Now()
	var out loadedArtifacts

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Model.Backend != "static" {
		g.Go(func() error {
			data, err := fetcher.Fetch(gctx, artifact.NameModel, cfg.Artifacts.ModelSource)
			if err != nil {
				return err
			}
			out.Model = data
			return nil
		})
	}

	g.Go(func() error {
		reg, err := mapping.Load(gctx, fetcher, cfg.Artifacts.MappingsSource)
		if err != nil {
			return err
		}
		out.Registry = reg
		return nil
	})

	g.Go(func() error {
		cat, err := catalog.Load(gctx, fetcher, cfg.Artifacts.CatalogSource)
		if err != nil {
			return err
		}
		out.Catalog = cat
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Info().
		Int("model_bytes", len(out.Model)).
		Int("categories", out.Registry.NumCategories()).
		Int("courses", out.Catalog.Len()).
		Dur("duration", time.Since(start)).
		Msg("Artifacts loaded")
	return &out, nil
}

// newPredictor builds the configured inference backend.
func newPredictor(cfg *config.Config, artifacts *loadedArtifacts) (model.Predictor, error) {
	if cfg.Model.Backend == "static" {
		p, err := model.NewOneHotPredictor(cfg.Model.StaticClass, artifacts.Registry.NumCategories())
		if err != nil {
			return nil, fmt.Errorf("static model: %w", err)
		}
		logging.Warn().Int("class", cfg.Model.StaticClass).Msg("Static model backend: every request predicts the same category")
		return p, nil
	}

	p, err := model.NewONNXPredictor(artifacts.Model, model.ONNXConfig{
		RuntimeLibrary: cfg.Model.RuntimeLibrary,
		InputName:      cfg.Model.InputName,
		OutputName:     cfg.Model.OutputName,
	})
	if err != nil {
		return nil, artifact.NewLoadError(artifact.NameModel, cfg.Artifacts.ModelSource, err)
	}
	return p, nil
}
