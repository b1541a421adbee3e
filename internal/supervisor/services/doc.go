// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

// Package services adapts the service's long-running components to
// suture.Service: the HTTP server and the artifact cache refresh loop.
package services
