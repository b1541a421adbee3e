// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

// Package main runs the CourseMate HTTP server.
//
// CourseMate predicts the category a learner is after from their interest,
// preferred course type and time budget, and answers with matching courses
// from the catalog.
//
// @title CourseMate API
// @version 1.0
// @description Course recommendations from a trained category classifier.
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
// @BasePath /api
//
// # Startup
//
// The model, the mapping bundle and the catalog are loaded in parallel before
// the server listens. Each comes from a local path or an HTTP(S) URL; remote
// artifacts are cached in Badger under CACHE_DIR so a restart survives an
// unreachable origin. Any load failure is fatal.
//
// # Configuration
//
// Environment variables (highest priority), an optional YAML file at
// CONFIG_PATH, ./config.yaml or /etc/coursemate/config.yaml, then defaults.
//
//	HTTP_PORT=8080
//	MODEL_URL=https://artifacts.example.com/category_model.onnx
//	MAPPINGS_URL=/srv/coursemate/mappings.json
//	CATALOG_URL=/srv/coursemate/courses.csv
//	ONNXRUNTIME_LIB=/usr/lib/libonnxruntime.so
//
// MODEL_BACKEND=static serves a fixed category without a model file, for
// smoke tests and local development.
package main
