// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/goccy/go-json"

	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/metrics"
)

// Recoverer turns a panic in next into a 500 response with body
// {"error": message}. The panic value and stack go to the request logger.
// http.ErrAbortHandler is re-panicked so net/http aborts the response.
func Recoverer(message string) func(http.Handler) http.Handler {
	body, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		panic(fmt.Sprintf("middleware: encode recover body: %v", err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				metrics.RecordPanic()
				logging.Ctx(r.Context()).Error().
					Str("panic", fmt.Sprint(rec)).
					Bytes("stack", debug.Stack()).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Recovered from panic in HTTP handler")

				h := w.Header()
				h.Set("Content-Type", "application/json")
				h.Set("Cache-Control", "no-store")
				h.Del("Content-Encoding")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
