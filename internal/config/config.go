// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package config

import "time"

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Model     ModelConfig     `koanf:"model"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
	Environment     string        `koanf:"environment"` // development or production
}

// ArtifactsConfig describes where the model, mapping bundle and catalog come
// from and how they are fetched and cached.
type ArtifactsConfig struct {
	ModelSource    string `koanf:"model_source"`
	MappingsSource string `koanf:"mappings_source"`
	CatalogSource  string `koanf:"catalog_source"`

	CacheDir     string `koanf:"cache_dir"`
	CacheEnabled bool   `koanf:"cache_enabled"`

	FetchTimeout   time.Duration `koanf:"fetch_timeout"`
	RetryAttempts  int           `koanf:"retry_attempts"`
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"`
	RetryMaxDelay  time.Duration `koanf:"retry_max_delay"`

	// RequestsPerSecond caps outbound downloads across all artifacts.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`

	// RefreshInterval revalidates the local cache in the background. 0 disables.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// ModelConfig selects the inference backend.
type ModelConfig struct {
	Backend        string `koanf:"backend"` // onnx or static
	RuntimeLibrary string `koanf:"runtime_library"`
	InputName      string `koanf:"input_name"`
	OutputName     string `koanf:"output_name"`

	// StaticClass is the class the static backend always predicts.
	StaticClass int `koanf:"static_class"`
}

// RecommendConfig holds the filter and projection policy of the engine.
type RecommendConfig struct {
	FilterCourseType       bool   `koanf:"filter_course_type"`
	FilterMaxDuration      bool   `koanf:"filter_max_duration"`
	IntroLimit             int    `koanf:"intro_limit"`
	Ellipsis               string `koanf:"ellipsis"`
	MaxResults             int    `koanf:"max_results"`
	MaxConcurrentInference int    `koanf:"max_concurrent_inference"`
	PredictionCacheSize    int    `koanf:"prediction_cache_size"`

	// DurationUnit documents the unit of catalog and request durations.
	DurationUnit string `koanf:"duration_unit"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in that order of precedence, and validates the result.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
