// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/coursemate/docs" // Swagger document
	"github.com/tomtom215/coursemate/internal/api"
	"github.com/tomtom215/coursemate/internal/config"
	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/metrics"
	"github.com/tomtom215/coursemate/internal/model"
	"github.com/tomtom215/coursemate/internal/supervisor"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("model_backend", cfg.Model.Backend).
		Msg("Starting CourseMate")
	metrics.RecordAppInfo(version)

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("CourseMate stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the service and blocks until SIGINT or SIGTERM.
func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing artifact cache")
			}
		}()
	}
	fetcher := newFetcher(cfg, store)

	artifacts, err := loadArtifacts(ctx, fetcher, cfg)
	if err != nil {
		return err
	}

	predictor, err := newPredictor(cfg, artifacts)
	if err != nil {
		return err
	}
	defer func() {
		if err := predictor.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing model")
		}
		if err := model.ShutdownRuntime(); err != nil {
			logging.Error().Err(err).Msg("Error shutting down ONNX Runtime")
		}
	}()

	engine, err := initEngine(cfg, artifacts, predictor)
	if err != nil {
		return err
	}

	handler := api.NewHandler(engine, version, cfg.Server.Timeout)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)), cfg.Server.MaxBodyBytes)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}
	addServices(tree, cfg, fetcher, handler, router.SetupChi())

	handler.SetReady(true)
	metrics.SetArtifactsReady(true)
	defer metrics.SetArtifactsReady(false)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Str("addr", serverAddr(cfg)).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// The channel carries exactly one result and is never closed.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
		cancel()
	}
	if errors.Is(serveErr, context.Canceled) {
		serveErr = nil
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return serveErr
}
