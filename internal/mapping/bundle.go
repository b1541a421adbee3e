// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package mapping

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/coursemate/internal/artifact"
	"github.com/tomtom215/coursemate/internal/logging"
)

// Bundle table names.
const (
	TableSubcategory = "SUBCATEGORY_MAPPING"
	TableCourseType  = "COURSE_TYPE_MAPPING"
	TableCategory    = "CATEGORY_MAPPING"
	TableDuration    = "DURATION_MAPPING"
)

var (
	// ErrLoad matches any failure to load the bundle.
	ErrLoad = artifact.ErrLoad

	// ErrMissingTable is returned when one of the four tables is absent.
	ErrMissingTable = errors.New("mapping table missing")

	// ErrEmptyTable is returned when one of the four tables has no entries.
	ErrEmptyTable = errors.New("mapping table empty")
)

// Fetcher retrieves raw artifact bytes.
type Fetcher interface {
	Fetch(ctx context.Context, name, source string) ([]byte, error)
}

// Load fetches the bundle from source and parses it. Any failure is
// returned as *artifact.LoadError.
func Load(ctx context.Context, f Fetcher, source string) (*Registry, error) {
	data, err := f.Fetch(ctx, artifact.NameMappings, source)
	if err != nil {
		return nil, artifact.NewLoadError(artifact.NameMappings, source, err)
	}

	reg, err := Parse(data)
	if err != nil {
		return nil, artifact.NewLoadError(artifact.NameMappings, source, err)
	}

	logging.Ctx(ctx).Info().
		Int("subcategories", len(reg.subcategories)).
		Int("course_types", len(reg.courseTypes)).
		Int("categories", len(reg.categories)).
		Int("durations", len(reg.durations)).
		Msg("Mapping registry loaded")

	return reg, nil
}

// Parse decodes a JSON mapping bundle.
func Parse(data []byte) (*Registry, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}

	tables := make(map[string]map[string]any, 4)
	for _, name := range []string{TableSubcategory, TableCourseType, TableCategory, TableDuration} {
		msg, ok := raw[name]
		if !ok || isNull(msg) {
			return nil, fmt.Errorf("%s: %w", name, ErrMissingTable)
		}
		var table map[string]any
		if err := json.Unmarshal(msg, &table); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", name, err)
		}
		if len(table) == 0 {
			return nil, fmt.Errorf("%s: %w", name, ErrEmptyTable)
		}
		tables[name] = table
	}

	subcategories, err := decodeCodes(TableSubcategory, tables[TableSubcategory])
	if err != nil {
		return nil, err
	}
	courseTypes, err := decodeCodes(TableCourseType, tables[TableCourseType])
	if err != nil {
		return nil, err
	}
	categories, err := decodeCategories(tables[TableCategory])
	if err != nil {
		return nil, err
	}
	durations, err := decodeDurations(tables[TableDuration])
	if err != nil {
		return nil, err
	}

	return New(subcategories, courseTypes, categories, durations)
}

func isNull(msg json.RawMessage) bool {
	return strings.TrimSpace(string(msg)) == "null"
}

// decodeCodes reads a name -> integer code table.
func decodeCodes(table string, m map[string]any) (map[string]int, error) {
	out := make(map[string]int, len(m))
	for name, v := range m {
		code, err := asInt(v)
		if err != nil {
			return nil, fmt.Errorf("%s[%q]: %w", table, name, err)
		}
		out[name] = code
	}
	return out, nil
}

// decodeCategories accepts both label -> index and index -> label tables and
// returns index -> label.
func decodeCategories(m map[string]any) (map[int]string, error) {
	out := make(map[int]string, len(m))

	labelToIndex := true
	for _, v := range m {
		if _, ok := v.(string); ok {
			labelToIndex = false
		}
		break
	}

	for k, v := range m {
		if labelToIndex {
			idx, err := asInt(v)
			if err != nil {
				return nil, fmt.Errorf("%s[%q]: %w", TableCategory, k, err)
			}
			if prev, dup := out[idx]; dup {
				return nil, fmt.Errorf("%s: labels %q and %q share index %d", TableCategory, prev, k, idx)
			}
			out[idx] = k
			continue
		}

		label, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%q]: mixed table orientation", TableCategory, k)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("%s: key %q is not a class index", TableCategory, k)
		}
		out[idx] = label
	}
	return out, nil
}

// decodeDurations reads a duration -> standardized score table. Keys are
// integers written as JSON object keys.
func decodeDurations(m map[string]any) (map[int]float64, error) {
	out := make(map[int]float64, len(m))
	for k, v := range m {
		d, err := parseIntKey(k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", TableDuration, err)
		}
		score, ok := v.(float64)
		if !ok || math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, fmt.Errorf("%s[%q]: score is not a finite number", TableDuration, k)
		}
		if _, dup := out[d]; dup {
			return nil, fmt.Errorf("%s: duration %d listed twice", TableDuration, d)
		}
		out[d] = score
	}
	return out, nil
}

// parseIntKey parses "8" and the float rendering "8.0".
func parseIntKey(k string) (int, error) {
	k = strings.TrimSpace(k)
	if n, err := strconv.Atoi(k); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(k, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("key %q is not an integer", k)
	}
	return int(f), nil
}

func asInt(v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("value %v is not a number", v)
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("value %v is not an integer", f)
	}
	return int(f), nil
}
