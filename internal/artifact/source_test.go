// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package artifact

import "testing"

func TestParseSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		wantKind Kind
		wantPath string
		wantErr  bool
	}{
		{name: "https url", raw: "https://example.com/model.onnx", wantKind: KindRemote},
		{name: "http url", raw: "http://example.com/mappings.json", wantKind: KindRemote},
		{name: "relative path", raw: "./data/catalog.csv", wantKind: KindLocal, wantPath: "./data/catalog.csv"},
		{name: "absolute path", raw: "/srv/model.onnx", wantKind: KindLocal, wantPath: "/srv/model.onnx"},
		{name: "file url", raw: "file:///srv/model.onnx", wantKind: KindLocal, wantPath: "/srv/model.onnx"},
		{name: "surrounding whitespace", raw: "  /srv/a.csv ", wantKind: KindLocal, wantPath: "/srv/a.csv"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "unsupported scheme", raw: "ftp://example.com/model.onnx", wantErr: true},
		{name: "missing host", raw: "https:///model.onnx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := ParseSource(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSource(%q) expected error, got %+v", tt.raw, src)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSource(%q) unexpected error: %v", tt.raw, err)
			}
			if src.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", src.Kind, tt.wantKind)
			}
			if src.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", src.Path, tt.wantPath)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if KindLocal.String() != "local" {
		t.Errorf("KindLocal.String() = %q", KindLocal.String())
	}
	if KindRemote.String() != "remote" {
		t.Errorf("KindRemote.String() = %q", KindRemote.String())
	}
}
