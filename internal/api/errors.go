// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/coursemate/internal/recommend"
)

// Messages returned to clients.
const (
	MsgNoInput           = "No input data provided."
	MsgMissingField      = "All fields (interest, course_type, duration) must be filled out."
	MsgInvalidDuration   = "Duration must be a valid number."
	MsgUnrecognizedInput = "Invalid inputs. Please check your entries."
	MsgMalformedBody     = "Request body could not be parsed."
	MsgBodyTooLarge      = "Request body too large."
	MsgInternal          = "An error occurred. Please try again."
	MsgRateLimited       = "Too many requests. Please try again later."
	MsgNotReady          = "Service is starting."
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error" example:"Duration must be a valid number."`
}

// statusForError maps an engine error to a status code and client message.
func statusForError(err error) (int, string) {
	var verr *recommend.ValidationError
	if errors.As(err, &verr) {
		switch verr.Reason {
		case recommend.ReasonMissingField:
			return http.StatusBadRequest, MsgMissingField
		case recommend.ReasonInvalidDuration:
			return http.StatusBadRequest, MsgInvalidDuration
		default:
			return http.StatusBadRequest, MsgUnrecognizedInput
		}
	}
	return http.StatusInternalServerError, MsgInternal
}
