// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursemate/internal/logging"
)

// ArtifactRefresher revalidates one cached artifact against its source.
// changed is true when a new version was downloaded into the cache.
type ArtifactRefresher interface {
	Refresh(ctx context.Context, name, source string) (changed bool, err error)
}

// ArtifactTarget is one artifact to keep fresh.
type ArtifactTarget struct {
	Name   string
	Source string
}

// ArtifactRefreshService periodically revalidates the artifact cache so the
// next start finds current artifacts even if the origin is then unreachable.
// The running process keeps serving the artifacts it loaded at startup.
type ArtifactRefreshService struct {
	refresher ArtifactRefresher
	targets   []ArtifactTarget
	interval  time.Duration
	timeout   time.Duration
	logger    zerolog.Logger
	name      string
}

// NewArtifactRefreshService creates the refresh loop. timeout bounds one
// refresh of one artifact; 0 means one interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewArtifactRefreshService(refresher ArtifactRefresher, targets []ArtifactTarget, interval, timeout time.Duration, logger zerolog.Logger) *ArtifactRefreshService {
	if timeout <= 0 {
		timeout = interval
	}
	return &ArtifactRefreshService{
		refresher: refresher,
		targets:   append([]ArtifactTarget(nil), targets...),
		interval:  interval,
		timeout:   timeout,
		logger:    logger.With().Str("service", "artifact-refresh").Logger(),
		name:      "artifact-refresh",
	}
}

// Serve implements suture.Service. With a non-positive interval it idles
// until ctx is canceled.
func (s *ArtifactRefreshService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info().Dur("interval", s.interval).Int("artifacts", len(s.targets)).Msg("artifact refresh running")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.RefreshAll(ctx)
		}
	}
}

// RefreshAll revalidates every target once. Failures are logged; the cached
// copy stays in place.
func (s *ArtifactRefreshService) RefreshAll(ctx context.Context) {
	for _, target := range s.targets {
		if ctx.Err() != nil {
			return
		}

		refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
		changed, err := s.refresher.Refresh(refreshCtx, target.Name, target.Source)
		cancel()

		event := s.logger.Debug()
		switch {
		case err != nil:
			event = s.logger.Warn().Err(err)
		case changed:
			event = s.logger.Info()
		}
		event.
			Str("artifact", target.Name).
			Str("source", logging.RedactURL(target.Source)).
			Bool("changed", changed).
			Msg("artifact revalidated")
	}
}

// String names the service in supervisor logs.
func (s *ArtifactRefreshService) String() string {
	return s.name
}
