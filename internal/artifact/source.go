// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package artifact

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind tells how a source is read.
type Kind int

const (
	KindLocal Kind = iota
	KindRemote
)

func (k Kind) String() string {
	if k == KindRemote {
		return "remote"
	}
	return "local"
}

// Source is a parsed artifact location.
type Source struct {
	Raw  string
	Kind Kind
	Path string // local filesystem path, set for KindLocal
}

// ParseSource classifies raw as a remote http(s) URL or a local path.
// file:// URLs resolve to their path.
func ParseSource(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Source{}, fmt.Errorf("empty source")
	}
	if !strings.Contains(raw, "://") {
		return Source{Raw: raw, Kind: KindLocal, Path: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Source{}, fmt.Errorf("parse source: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return Source{}, fmt.Errorf("source %q has no host", raw)
		}
		return Source{Raw: raw, Kind: KindRemote}, nil
	case "file":
		if u.Path == "" {
			return Source{}, fmt.Errorf("source %q has no path", raw)
		}
		return Source{Raw: raw, Kind: KindLocal, Path: u.Path}, nil
	default:
		return Source{}, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}
