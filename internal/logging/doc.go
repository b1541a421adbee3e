// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

// Package logging wraps zerolog as the single structured logger of the service.
//
// Initialize once from main:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
// and log with structured fields:
//
//	logging.Info().Str("category", c).Int("results", n).Msg("Recommendation served")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Rejected request")
//
// Ctx adds the request ID placed in the context by the HTTP middleware.
// SlogHandler bridges slog-only libraries such as sutureslog onto the same
// zerolog output. RedactURL must be applied to artifact URLs before they are
// logged because signed URLs carry credentials in the query string.
package logging
