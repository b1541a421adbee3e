// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/coursemate/internal/logging"
	"github.com/tomtom215/coursemate/internal/metrics"
)

// DefaultMaxBytes bounds a single artifact download.
const DefaultMaxBytes = 512 << 20

var errTooLarge = errors.New("artifact exceeds size limit")

// Options configures a Fetcher. Zero values fall back to defaults.
type Options struct {
	Client *http.Client

	// Store caches remote artifacts. nil disables caching.
	Store *Store

	Retry RetryConfig

	// FetchTimeout bounds a single HTTP attempt.
	FetchTimeout time.Duration

	// RequestsPerSecond paces outbound requests across all artifacts.
	RequestsPerSecond float64

	BreakerFailureThreshold uint32
	BreakerTimeout          time.Duration

	MaxBytes int64
}

// Fetcher loads artifacts from local paths or remote URLs.
type Fetcher struct {
	client       *http.Client
	store        *Store
	retry        RetryConfig
	fetchTimeout time.Duration
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker[*download]
	maxBytes     int64
	now          func() time.Time
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	fetchTimeout := opts.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 60 * time.Second
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	return &Fetcher{
		client:       client,
		store:        opts.Store,
		retry:        opts.Retry.withDefaults(),
		fetchTimeout: fetchTimeout,
		limiter:      rate.NewLimiter(rate.Limit(rps), burst),
		breaker:      newBreaker(opts.BreakerFailureThreshold, opts.BreakerTimeout),
		maxBytes:     maxBytes,
		now:          time.Now,
	}
}

// Fetch returns the bytes of the named artifact. Remote artifacts are served
// from the cache when a verified copy from the same source exists, and are
// downloaded and cached otherwise. Errors are *LoadError.
func (f *Fetcher) Fetch(ctx context.Context, name, rawSource string) ([]byte, error) {
	src, err := ParseSource(rawSource)
	if err != nil {
		return nil, NewLoadError(name, rawSource, err)
	}

	if src.Kind == KindLocal {
		return f.readLocal(name, src)
	}

	if data, ok := f.fromCache(ctx, name, src); ok {
		return data, nil
	}

	start := f.now()
	dl, err := f.get(ctx, src.Raw, "")
	if err != nil {
		metrics.RecordArtifactFetch(name, metrics.OriginRemote, time.Since(start), 0, err)
		return nil, NewLoadError(name, src.Raw, err)
	}
	metrics.RecordArtifactFetch(name, metrics.OriginRemote, time.Since(start), len(dl.body), nil)

	logging.Ctx(ctx).Info().
		Str("artifact", name).
		Str("source", logging.RedactURL(src.Raw)).
		Int("bytes", len(dl.body)).
		Dur("elapsed", time.Since(start)).
		Msg("Artifact downloaded")

	f.cache(ctx, name, src, dl)
	return dl.body, nil
}

// Refresh revalidates a cached remote artifact with a conditional request and
// replaces the cached copy when the remote changed. It reports whether the
// cache was updated. Local sources and fetchers without a store are no-ops.
func (f *Fetcher) Refresh(ctx context.Context, name, rawSource string) (bool, error) {
	src, err := ParseSource(rawSource)
	if err != nil {
		return false, NewLoadError(name, rawSource, err)
	}
	if src.Kind == KindLocal || f.store == nil {
		return false, nil
	}

	etag := ""
	if entry, err := f.store.Get(name); err == nil && entry.Meta.Source == src.Raw {
		etag = entry.Meta.ETag
	}

	start := f.now()
	dl, err := f.get(ctx, src.Raw, etag)
	if err != nil {
		metrics.RecordArtifactFetch(name, metrics.OriginRemote, time.Since(start), 0, err)
		return false, NewLoadError(name, src.Raw, err)
	}

	if dl.status == http.StatusNotModified {
		if err := f.store.Touch(name, f.now()); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("artifact", name).Msg("Failed to record artifact revalidation")
		}
		return false, nil
	}

	metrics.RecordArtifactFetch(name, metrics.OriginRemote, time.Since(start), len(dl.body), nil)
	f.cache(ctx, name, src, dl)
	return true, nil
}

func (f *Fetcher) readLocal(name string, src Source) ([]byte, error) {
	start := f.now()
	data, err := os.ReadFile(src.Path)
	metrics.RecordArtifactFetch(name, metrics.OriginLocal, time.Since(start), len(data), err)
	if err != nil {
		return nil, NewLoadError(name, src.Raw, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, NewLoadError(name, src.Raw, errTooLarge)
	}
	return data, nil
}

func (f *Fetcher) fromCache(ctx context.Context, name string, src Source) ([]byte, bool) {
	if f.store == nil {
		return nil, false
	}

	start := f.now()
	entry, err := f.store.Get(name)
	switch {
	case errors.Is(err, ErrNotCached):
		return nil, false
	case err != nil:
		logging.Ctx(ctx).Warn().Err(err).Str("artifact", name).Msg("Artifact cache read failed, downloading")
		return nil, false
	case entry.Meta.Source != src.Raw:
		logging.Ctx(ctx).Info().Str("artifact", name).Msg("Artifact source changed, downloading")
		return nil, false
	}

	if err := entry.Verify(); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("artifact", name).Msg("Cached artifact is corrupt, downloading")
		if delErr := f.store.Delete(name); delErr != nil {
			logging.Ctx(ctx).Warn().Err(delErr).Str("artifact", name).Msg("Failed to evict corrupt artifact")
		}
		return nil, false
	}

	metrics.RecordArtifactFetch(name, metrics.OriginCache, time.Since(start), len(entry.Data), nil)
	logging.Ctx(ctx).Info().
		Str("artifact", name).
		Time("fetched_at", entry.Meta.FetchedAt).
		Int("bytes", len(entry.Data)).
		Msg("Artifact loaded from cache")
	return entry.Data, true
}

func (f *Fetcher) cache(ctx context.Context, name string, src Source, dl *download) {
	if f.store == nil {
		return
	}
	meta := Meta{
		Source:       src.Raw,
		ETag:         dl.header.Get("ETag"),
		LastModified: dl.header.Get("Last-Modified"),
		FetchedAt:    f.now().UTC(),
	}
	if err := f.store.Put(name, dl.body, meta); err != nil {
		// The artifact is usable without the cache
		logging.Ctx(ctx).Warn().Err(err).Str("artifact", name).Msg("Failed to cache artifact")
	}
}

// get downloads url with retries. A non-empty etag turns the request into a
// conditional GET whose 304 answer is returned as a successful download.
func (f *Fetcher) get(ctx context.Context, url, etag string) (*download, error) {
	var lastErr error
	for attempt := 1; attempt <= f.retry.MaxAttempts; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		dl, err := f.breaker.Execute(func() (*download, error) {
			return f.attempt(ctx, url, etag)
		})
		recordBreakerResult(err)
		if err == nil {
			return dl, nil
		}

		lastErr = err
		if !retryable(err) || attempt == f.retry.MaxAttempts {
			break
		}

		var retryAfter time.Duration
		var herr *HTTPError
		if errors.As(err, &herr) {
			retryAfter = ParseRetryAfter(herr.Header)
		}
		delay := f.retry.backoff(attempt, retryAfter)

		logging.Ctx(ctx).Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", f.retry.MaxAttempts).
			Dur("backoff", delay).
			Msg("Artifact download failed, retrying")

		if err := sleepContext(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("download failed after retries: %w", lastErr)
}

// attempt performs one GET and reads the whole body.
func (f *Fetcher) attempt(ctx context.Context, url, etag string) (*download, error) {
	ctx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified && etag != "" {
		return &download{status: resp.StatusCode, header: resp.Header.Clone()}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode, Header: resp.Header.Clone()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, errTooLarge
	}

	return &download{status: resp.StatusCode, header: resp.Header.Clone(), body: body}, nil
}
