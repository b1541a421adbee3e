// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
)

// Content encodings in order of preference.
const (
	encodingBrotli = "br"
	encodingGzip   = "gzip"
)

// compressWriter routes the body through an encoder.
type compressWriter struct {
	io.Writer
	http.ResponseWriter
	wroteHeader bool
}

func (w *compressWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *compressWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.Writer.Write(b)
}

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

var brotliWriterPool = sync.Pool{
	New: func() interface{} {
		return brotli.NewWriterLevel(io.Discard, brotli.DefaultCompression)
	},
}

// Compression encodes responses with Brotli or gzip, whichever the client
// prefers, Brotli winning ties.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if r.Method == http.MethodHead || r.Header.Get("Upgrade") != "" {
			next.ServeHTTP(w, r)
			return
		}

		switch negotiateEncoding(r.Header.Get("Accept-Encoding")) {
		case encodingBrotli:
			bw := brotliWriterPool.Get().(*brotli.Writer)
			defer brotliWriterPool.Put(bw)
			bw.Reset(w)

			w.Header().Set("Content-Encoding", encodingBrotli)
			w.Header().Del("Content-Length")
			next.ServeHTTP(&compressWriter{Writer: bw, ResponseWriter: w}, r)
			// Not deferred: a panicking handler must leave the response
			// uncommitted for Recoverer.
			_ = bw.Close()

		case encodingGzip:
			gz := gzipWriterPool.Get().(*gzip.Writer)
			defer gzipWriterPool.Put(gz)
			gz.Reset(w)

			w.Header().Set("Content-Encoding", encodingGzip)
			w.Header().Del("Content-Length")
			next.ServeHTTP(&compressWriter{Writer: gz, ResponseWriter: w}, r)
			_ = gz.Close()

		default:
			next.ServeHTTP(w, r)
		}
	})
}

// negotiateEncoding picks br or gzip from an Accept-Encoding header, or ""
// when neither is acceptable. "*" accepts both.
func negotiateEncoding(header string) string {
	if header == "" {
		return ""
	}

	var brQ, gzipQ, anyQ float64 = -1, -1, -1
	for _, part := range strings.Split(header, ",") {
		name, q := parseCoding(part)
		switch name {
		case encodingBrotli:
			brQ = q
		case encodingGzip, "x-gzip":
			gzipQ = q
		case "*":
			anyQ = q
		}
	}
	if brQ < 0 {
		brQ = anyQ
	}
	if gzipQ < 0 {
		gzipQ = anyQ
	}

	switch {
	case brQ > 0 && brQ >= gzipQ:
		return encodingBrotli
	case gzipQ > 0:
		return encodingGzip
	default:
		return ""
	}
}

// parseCoding splits "gzip;q=0.8" into its name and quality.
func parseCoding(part string) (string, float64) {
	name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
	name = strings.ToLower(strings.TrimSpace(name))
	q := 1.0
	for _, p := range strings.Split(params, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), "q") {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				q = f
			}
		}
	}
	return name, q
}
