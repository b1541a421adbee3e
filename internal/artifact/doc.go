// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

/*
Package artifact retrieves the startup artifacts of the service: the
classification model, the mapping bundle and the course catalog.

A source is an http(s) URL, a file:// URL or a local path. Local sources are
read directly. Remote sources are downloaded with bounded retries
(exponential backoff with jitter, Retry-After aware) behind a circuit
breaker, paced by a shared rate limiter, and cached in a Badger store keyed
by artifact name. A cached copy is reused only when it was fetched from the
same source and its SHA-256 checksum still matches.

	store, _ := artifact.OpenStore("/data/cache")
	fetcher := artifact.NewFetcher(artifact.Options{Store: store})
	data, err := fetcher.Fetch(ctx, artifact.NameCatalog, "https://example.com/courses.csv")

Every failure is returned as a *LoadError, which matches ErrLoad under
errors.Is. Startup treats it as fatal.
*/
package artifact
