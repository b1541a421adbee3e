// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package mapping

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/coursemate/internal/artifact"
)

type fakeFetcher struct {
	data []byte
	err  error
}

func (f fakeFetcher) Fetch(_ context.Context, _, _ string) ([]byte, error) {
	return f.data, f.err
}

func TestParseValidBundle(t *testing.T) {
	t.Parallel()

	reg, err := Parse([]byte(validBundle))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if code, ok := reg.EncodeSubcategory("Machine Learning"); !ok || code != 2 {
		t.Errorf("EncodeSubcategory(Machine Learning) = %d, %v", code, ok)
	}
	if code, ok := reg.EncodeCourseType("Specialization"); !ok || code != 3 {
		t.Errorf("EncodeCourseType(Specialization) = %d, %v", code, ok)
	}
	if score, ok := reg.ScaleDuration(8); !ok || score != -0.12 {
		t.Errorf("ScaleDuration(8) = %v, %v", score, ok)
	}
	if label, ok := reg.DecodeCategory(1); !ok || label != "Life Sciences" {
		t.Errorf("DecodeCategory(1) = %q, %v", label, ok)
	}
	if reg.NumCategories() != 2 {
		t.Errorf("NumCategories() = %d, want 2", reg.NumCategories())
	}
}

func TestParseIndexToLabelOrientation(t *testing.T) {
	t.Parallel()

	bundle := strings.Replace(validBundle,
		`{"Data Science": 0, "Life Sciences": 1}`,
		`{"0": "Data Science", "1": "Life Sciences"}`, 1)

	reg, err := Parse([]byte(bundle))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if label, ok := reg.DecodeCategory(0); !ok || label != "Data Science" {
		t.Errorf("DecodeCategory(0) = %q, %v", label, ok)
	}
}

func TestParseFloatDurationKeys(t *testing.T) {
	t.Parallel()

	bundle := strings.Replace(validBundle,
		`{"4": -0.81, "8": -0.12, "12": 0.57, "20": 1.9}`,
		`{"4.0": -0.81, "8.0": -0.12}`, 1)

	reg, err := Parse([]byte(bundle))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := reg.ScaleDuration(8); !ok {
		t.Error("ScaleDuration(8) not found for key 8.0")
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bundle  string
		wantErr error
	}{
		{
			name:   "not json",
			bundle: `not json`,
		},
		{
			name:    "missing table",
			bundle:  `{"SUBCATEGORY_MAPPING": {"a": 0}, "COURSE_TYPE_MAPPING": {"Course": 0}, "CATEGORY_MAPPING": {"x": 0}}`,
			wantErr: ErrMissingTable,
		},
		{
			name:    "null table",
			bundle:  strings.Replace(validBundle, `{"Course": 0, "Professional Certificate": 1, "Project": 2, "Specialization": 3}`, `null`, 1),
			wantErr: ErrMissingTable,
		},
		{
			name:    "empty table",
			bundle:  strings.Replace(validBundle, `{"Biology": 0, "Data Analysis": 1, "Machine Learning": 2}`, `{}`, 1),
			wantErr: ErrEmptyTable,
		},
		{
			name:   "duplicate category index",
			bundle: strings.Replace(validBundle, `{"Data Science": 0, "Life Sciences": 1}`, `{"Data Science": 0, "Life Sciences": 0}`, 1),
		},
		{
			name:   "category gap",
			bundle: strings.Replace(validBundle, `{"Data Science": 0, "Life Sciences": 1}`, `{"Data Science": 0, "Life Sciences": 2}`, 1),
		},
		{
			name:   "fractional code",
			bundle: strings.Replace(validBundle, `"Biology": 0`, `"Biology": 0.5`, 1),
		},
		{
			name:   "non integer duration key",
			bundle: strings.Replace(validBundle, `"4": -0.81`, `"four": -0.81`, 1),
		},
		{
			name:   "duration score not a number",
			bundle: strings.Replace(validBundle, `"4": -0.81`, `"4": "low"`, 1),
		},
		{
			name:   "duplicate label in index orientation",
			bundle: strings.Replace(validBundle, `{"Data Science": 0, "Life Sciences": 1}`, `{"0": "Data Science", "1": "Data Science"}`, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg, err := Parse([]byte(tt.bundle))
			if err == nil {
				t.Fatalf("Parse() expected error, got registry with %d categories", reg.NumCategories())
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	reg, err := Load(context.Background(), fakeFetcher{data: []byte(validBundle)}, "mappings.json")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.NumCategories() != 2 {
		t.Errorf("NumCategories() = %d", reg.NumCategories())
	}
}

func TestLoadErrorsAreLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fetcher fakeFetcher
	}{
		{name: "fetch failure", fetcher: fakeFetcher{err: errors.New("connection refused")}},
		{name: "malformed", fetcher: fakeFetcher{data: []byte(`{}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(context.Background(), tt.fetcher, "https://example.com/mappings.json")
			if !errors.Is(err, ErrLoad) {
				t.Fatalf("Load() error = %v, want ErrLoad", err)
			}
			var le *artifact.LoadError
			if !errors.As(err, &le) || le.Artifact != artifact.NameMappings {
				t.Errorf("LoadError = %+v", le)
			}
		})
	}
}
