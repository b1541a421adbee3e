// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package recommend

import "github.com/tomtom215/coursemate/internal/validation"

// Config controls the selection policy of the engine.
type Config struct {
	// FilterCourseType keeps only courses of the requested course type.
	FilterCourseType bool `json:"filter_course_type"`

	// FilterMaxDuration keeps only courses no longer than the requested
	// duration.
	FilterMaxDuration bool `json:"filter_max_duration"`

	// IntroLimit is the number of characters of the short intro kept
	// before Ellipsis is appended.
	IntroLimit int `json:"intro_limit" validate:"min=1"`

	// Ellipsis marks a truncated intro.
	Ellipsis string `json:"ellipsis"`

	// MaxResults caps the recommendation list.
	MaxResults int `json:"max_results" validate:"min=1"`

	// MaxConcurrentInference bounds parallel model calls. Zero means
	// unbounded.
	MaxConcurrentInference int `json:"max_concurrent_inference" validate:"gte=0"`

	// PredictionCacheSize is the number of memoized feature vectors. Zero
	// disables the cache.
	PredictionCacheSize int `json:"prediction_cache_size" validate:"gte=0"`

	// DurationUnit names the unit of catalog durations, e.g. "weeks".
	DurationUnit string `json:"duration_unit" validate:"omitempty,oneof=weeks months hours"`
}

// DefaultConfig returns the policy of the documented recommend API.
func DefaultConfig() *Config {
	return &Config{
		FilterCourseType:       true,
		FilterMaxDuration:      true,
		IntroLimit:             200,
		Ellipsis:               "...",
		MaxResults:             10,
		MaxConcurrentInference: 0,
		PredictionCacheSize:    1024,
		DurationUnit:           "weeks",
	}
}

// Validate checks the configuration against its validate tags.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	return nil
}
