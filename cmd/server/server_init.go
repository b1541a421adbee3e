// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package main

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/coursemate/internal/api"
	"github.com/tomtom215/coursemate/internal/artifact"
	"github.com/tomtom215/coursemate/internal/config"
	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/metrics"
	"github.com/tomtom215/coursemate/internal/supervisor"
	"github.com/tomtom215/coursemate/internal/supervisor/services"
)

func serverAddr(cfg *config.Config) string {
	return net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
}

// newHTTPServer builds the server with timeouts derived from the request
// timeout.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	timeout := cfg.Server.Timeout
	return &http.Server{
		Addr:              serverAddr(cfg),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// addServices registers the HTTP server and, when enabled, the artifact
// refresh loop.
func addServices(tree *supervisor.SupervisorTree, cfg *config.Config, fetcher *artifact.Fetcher, handler *api.Handler, routes http.Handler) {
	httpSvc := services.NewHTTPServerService(newHTTPServer(cfg, routes), cfg.Server.ShutdownTimeout).
		OnShutdown(func() {
			handler.SetReady(false)
			metrics.SetArtifactsReady(false)
		})
	tree.AddAPIService(httpSvc)

	if cfg.Artifacts.RefreshInterval <= 0 {
		logging.Info().Msg("Artifact refresh disabled (ARTIFACT_REFRESH_INTERVAL=0)")
		return
	}

	targets := []services.ArtifactTarget{
		{Name: artifact.NameMappings, Source: cfg.Artifacts.MappingsSource},
		{Name: artifact.NameCatalog, Source: cfg.Artifacts.CatalogSource},
	}
	if cfg.Model.Backend != "static" {
		targets = append(targets, services.ArtifactTarget{Name: artifact.NameModel, Source: cfg.Artifacts.ModelSource})
	}
	tree.AddArtifactService(services.NewArtifactRefreshService(
		fetcher, targets, cfg.Artifacts.RefreshInterval, cfg.Artifacts.FetchTimeout, logging.WithComponent("artifacts"),
	))
}
