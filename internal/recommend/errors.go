// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package recommend

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failure reasons.
const (
	ReasonMissingField      = "missing field"
	ReasonInvalidDuration   = "invalid duration"
	ReasonUnrecognizedInput = "unrecognized input"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid recommendation request")

	// ErrInternal matches every *InternalError.
	ErrInternal = errors.New("recommendation failed")

	// ErrIncompatible is returned by NewEngine when the model and the
	// mapping registry disagree on the number of categories.
	ErrIncompatible = errors.New("model incompatible with mapping registry")
)

// ValidationError is a request the caller can correct.
type ValidationError struct {
	Reason string
	// Fields names the offending request fields, by JSON name.
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if len(e.Fields) > 0 {
		msg += " (" + strings.Join(e.Fields, ", ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(reason string, err error, fields ...string) *ValidationError {
	return &ValidationError{Reason: reason, Fields: fields, Err: err}
}

// InternalError is a server-side failure. Its message is for logs only.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInternal) true.
func (e *InternalError) Is(target error) bool { return target == ErrInternal }
