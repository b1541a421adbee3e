// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/coursemate/internal/logging"
)

// Validate checks that required configuration is present and consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	if err := c.validateModel(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("HTTP_MAX_BODY_BYTES must be positive, got %d", c.Server.MaxBodyBytes)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	a := c.Artifacts
	sources := []struct{ value, name string }{
		{a.ModelSource, "MODEL_URL"},
		{a.MappingsSource, "MAPPINGS_URL"},
		{a.CatalogSource, "CATALOG_URL"},
	}
	for _, s := range sources {
		// The static backend runs without a model file
		if s.name == "MODEL_URL" && c.Model.Backend == "static" && s.value == "" {
			continue
		}
		if err := validateSource(s.value, s.name); err != nil {
			return err
		}
	}

	if a.CacheEnabled && strings.TrimSpace(a.CacheDir) == "" {
		return fmt.Errorf("CACHE_DIR is required when ARTIFACT_CACHE_ENABLED=true")
	}
	if a.FetchTimeout <= 0 {
		return fmt.Errorf("ARTIFACT_FETCH_TIMEOUT must be positive, got %s", a.FetchTimeout)
	}
	if a.RetryAttempts < 1 {
		return fmt.Errorf("ARTIFACT_RETRY_ATTEMPTS must be at least 1, got %d", a.RetryAttempts)
	}
	if a.RetryBaseDelay <= 0 || a.RetryMaxDelay < a.RetryBaseDelay {
		return fmt.Errorf("artifact retry delays must satisfy 0 < base (%s) <= max (%s)", a.RetryBaseDelay, a.RetryMaxDelay)
	}
	if a.RequestsPerSecond <= 0 {
		return fmt.Errorf("ARTIFACT_REQUESTS_PER_SECOND must be positive, got %v", a.RequestsPerSecond)
	}
	if a.BreakerFailureThreshold == 0 {
		return fmt.Errorf("ARTIFACT_BREAKER_FAILURE_THRESHOLD must be at least 1")
	}
	if a.RefreshInterval < 0 {
		return fmt.Errorf("ARTIFACT_REFRESH_INTERVAL must not be negative, got %s", a.RefreshInterval)
	}
	return nil
}

func (c *Config) validateModel() error {
	switch c.Model.Backend {
	case "onnx":
	case "static":
		if c.Model.StaticClass < 0 {
			return fmt.Errorf("MODEL_STATIC_CLASS must not be negative, got %d", c.Model.StaticClass)
		}
	default:
		return fmt.Errorf("MODEL_BACKEND must be onnx or static, got %q", c.Model.Backend)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.IntroLimit < 1 {
		return fmt.Errorf("RECOMMEND_INTRO_LIMIT must be at least 1, got %d", r.IntroLimit)
	}
	if r.MaxResults < 1 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be at least 1, got %d", r.MaxResults)
	}
	if r.MaxConcurrentInference < 0 {
		return fmt.Errorf("RECOMMEND_MAX_CONCURRENT_INFERENCE must not be negative, got %d", r.MaxConcurrentInference)
	}
	if r.PredictionCacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must not be negative, got %d", r.PredictionCacheSize)
	}
	switch r.DurationUnit {
	case "weeks", "months", "hours":
	default:
		return fmt.Errorf("RECOMMEND_DURATION_UNIT must be weeks, months or hours, got %q", r.DurationUnit)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL is invalid: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
