// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateSource accepts an http(s) URL with a host, a file:// URL or a
// plain filesystem path.
func validateSource(raw, fieldName string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if !strings.Contains(raw, "://") {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	switch parsed.Scheme {
	case "http", "https":
		if parsed.Host == "" {
			return fmt.Errorf("%s host is required", fieldName)
		}
		if parsed.Path == "" || parsed.Path == "/" {
			return fmt.Errorf("%s must point at a file, got base URL %s", fieldName, raw)
		}
	case "file":
		if parsed.Path == "" {
			return fmt.Errorf("%s file URL has no path", fieldName)
		}
	default:
		return fmt.Errorf("%s scheme must be http, https or file, got: %s", fieldName, parsed.Scheme)
	}
	return nil
}
