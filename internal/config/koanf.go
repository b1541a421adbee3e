// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/coursemate/config.yaml",
	"/etc/coursemate/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults, applied before file and env.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    64 << 10,
			Environment:     "development",
		},
		Artifacts: ArtifactsConfig{
			CacheDir:                "./data/cache",
			CacheEnabled:            true,
			FetchTimeout:            60 * time.Second,
			RetryAttempts:           4,
			RetryBaseDelay:          500 * time.Millisecond,
			RetryMaxDelay:           10 * time.Second,
			RequestsPerSecond:       5,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
			RefreshInterval:         0,
		},
		Model: ModelConfig{
			Backend: "onnx",
		},
		// Course type and duration filters both apply, matching the documented API
		Recommend: RecommendConfig{
			FilterCourseType:       true,
			FilterMaxDuration:      true,
			IntroLimit:             200,
			Ellipsis:               "...",
			MaxResults:             10,
			MaxConcurrentInference: 0,
			PredictionCacheSize:    1024,
			DurationUnit:           "weeks",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration from defaults, the optional config file
// and environment variables (highest priority), then validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Variables not listed are ignored.
var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"http_max_body_bytes":   "server.max_body_bytes",
	"environment":           "server.environment",

	"model_url":                          "artifacts.model_source",
	"mappings_url":                       "artifacts.mappings_source",
	"catalog_url":                        "artifacts.catalog_source",
	"cache_dir":                          "artifacts.cache_dir",
	"artifact_cache_enabled":             "artifacts.cache_enabled",
	"artifact_fetch_timeout":             "artifacts.fetch_timeout",
	"artifact_retry_attempts":            "artifacts.retry_attempts",
	"artifact_retry_base_delay":          "artifacts.retry_base_delay",
	"artifact_retry_max_delay":           "artifacts.retry_max_delay",
	"artifact_requests_per_second":       "artifacts.requests_per_second",
	"artifact_breaker_failure_threshold": "artifacts.breaker_failure_threshold",
	"artifact_breaker_timeout":           "artifacts.breaker_timeout",
	"artifact_refresh_interval":          "artifacts.refresh_interval",

	"model_backend":      "model.backend",
	"onnxruntime_lib":    "model.runtime_library",
	"model_input_name":   "model.input_name",
	"model_output_name":  "model.output_name",
	"model_static_class": "model.static_class",

	"recommend_filter_course_type":       "recommend.filter_course_type",
	"recommend_filter_max_duration":      "recommend.filter_max_duration",
	"recommend_intro_limit":              "recommend.intro_limit",
	"recommend_ellipsis":                 "recommend.ellipsis",
	"recommend_max_results":              "recommend.max_results",
	"recommend_max_concurrent_inference": "recommend.max_concurrent_inference",
	"recommend_cache_size":               "recommend.prediction_cache_size",
	"recommend_duration_unit":            "recommend.duration_unit",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf paths.
//
//   - HTTP_PORT -> server.port
//   - MODEL_URL -> artifacts.model_source
//   - RECOMMEND_INTRO_LIMIT -> recommend.intro_limit
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
