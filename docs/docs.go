// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

// Package docs holds the Swagger document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recommend": {
            "post": {
                "description": "Predicts the course category for an interest, course type and maximum duration, then returns up to ten matching courses ordered by duration. Accepts JSON or form input; \"interest\" is an alias of \"subcategory\".",
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Recommend"],
                "summary": "Recommend courses",
                "parameters": [
                    {
                        "description": "Recommendation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendRequestDoc"}
                    }
                ],
                "responses": {
                    "200": {"description": "Predicted category and courses", "schema": {"$ref": "#/definitions/recommend.Result"}},
                    "400": {"description": "Missing or unrecognized input", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/v1/recommend": {
            "post": {
                "description": "Predicts the course category for an interest, course type and maximum duration, then returns up to ten matching courses ordered by duration. Accepts JSON or form input; \"interest\" is an alias of \"subcategory\".",
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Recommend"],
                "summary": "Recommend courses",
                "parameters": [
                    {
                        "description": "Recommendation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendRequestDoc"}
                    }
                ],
                "responses": {
                    "200": {"description": "Predicted category and courses", "schema": {"$ref": "#/definitions/recommend.Result"}},
                    "400": {"description": "Missing or unrecognized input", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/v1/options": {
            "get": {
                "description": "Known sub-categories, course types and durations, for populating pickers.",
                "produces": ["application/json"],
                "tags": ["Recommend"],
                "summary": "List recognized inputs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/recommend.Options"}},
                    "304": {"description": "Not modified"}
                }
            }
        },
        "/v1/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthStatus"}}
                }
            }
        },
        "/v1/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthStatus"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.HealthStatus"}}
                }
            }
        }
    },
    "definitions": {
        "api.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "uptime_seconds": {"type": "number", "example": 42.5},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "api.RecommendRequestDoc": {
            "type": "object",
            "properties": {
                "course_type": {"type": "string", "example": "Course"},
                "duration": {"type": "string", "example": "8"},
                "interest": {"type": "string", "example": "Machine Learning"},
                "subcategory": {"type": "string", "example": "Machine Learning"}
            }
        },
        "api.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Duration must be a valid number."}
            }
        },
        "recommend.Options": {
            "type": "object",
            "properties": {
                "course_types": {"type": "array", "items": {"type": "string"}},
                "duration_unit": {"type": "string"},
                "durations": {"type": "array", "items": {"type": "integer"}},
                "subcategories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "recommend.Recommendation": {
            "type": "object",
            "properties": {
                "short_intro": {"type": "string"},
                "title": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "recommend.Result": {
            "type": "object",
            "properties": {
                "predicted_category": {"type": "string"},
                "recommended_courses": {"type": "array", "items": {"$ref": "#/definitions/recommend.Recommendation"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "CourseMate API",
	Description:      "Course recommendations from a trained category classifier.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
