// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package artifact

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/coursemate/internal/logging"
)

// Artifact names used as cache keys and metric labels.
const (
	NameModel    = "model"
	NameMappings = "mappings"
	NameCatalog  = "catalog"
)

var (
	// ErrLoad matches every *LoadError.
	ErrLoad = errors.New("artifact load failed")

	// ErrNotCached is returned by Store.Get for unknown artifacts.
	ErrNotCached = errors.New("artifact not cached")
)

// LoadError reports an artifact that could not be fetched or decoded.
// It is fatal at startup.
type LoadError struct {
	Artifact string
	Source   string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s from %s: %v", e.Artifact, logging.RedactURL(e.Source), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoad) true for any LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// NewLoadError wraps err unless it already is a LoadError.
func NewLoadError(artifact, source string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return err
	}
	return &LoadError{Artifact: artifact, Source: source, Err: err}
}

// HTTPError carries the status of a non-2xx download response.
type HTTPError struct {
	URL        string
	StatusCode int
	Header     http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", logging.RedactURL(e.URL), e.StatusCode)
}

// clientError reports 4xx responses other than 408 and 429, which retrying
// cannot fix and which say nothing about the health of the remote.
func clientError(err error) bool {
	var herr *HTTPError
	if !errors.As(err, &herr) {
		return false
	}
	switch herr.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	}
	return herr.StatusCode >= 400 && herr.StatusCode < 500
}
