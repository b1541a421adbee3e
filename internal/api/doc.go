// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

/*
Package api exposes the recommendation engine over HTTP using the Chi router.

Routes:

	POST /api/recommend           recommendation (original path)
	POST /api/v1/recommend        recommendation
	GET  /api/v1/options          known sub-categories, course types and durations
	GET  /api/v1/health/live      liveness
	GET  /api/v1/health/ready     readiness (artifacts loaded)
	GET  /metrics                 Prometheus exposition
	GET  /swagger/*               Swagger UI

The recommend endpoints accept JSON or form input:

	{"subcategory": "Machine Learning", "course_type": "Course", "duration": "8"}

"interest" is accepted as an alias of "subcategory" and duration may be a
JSON string or number. Success responses are

	{"predicted_category": "Data Science", "recommended_courses": [{"title": ..., "short_intro": ..., "url": ...}]}

and failures are {"error": "<message>"}: 400 for input the caller can fix, 500
for everything else. Internal details are logged, never returned.

Global middleware, outermost first: request ID with logging, real IP, panic
recovery, CORS, per-IP rate limiting, Prometheus metrics, security headers,
compression and a request body limit.
*/
package api
