// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

// Package catalog loads the course catalog, the ordered table of courses
// that recommendations are drawn from. A Catalog is immutable once parsed.
package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/coursemate/internal/artifact"
	"github.com/tomtom215/coursemate/internal/logging"
)

// Column names of the catalog CSV.
const (
	ColumnTitle       = "Title"
	ColumnShortIntro  = "Short Intro"
	ColumnURL         = "URL"
	ColumnCategory    = "Category"
	ColumnSubCategory = "Sub-Category"
	ColumnCourseType  = "Course Type"
	ColumnDuration    = "Duration"
)

var requiredColumns = []string{
	ColumnTitle, ColumnShortIntro, ColumnURL, ColumnCategory,
	ColumnSubCategory, ColumnCourseType, ColumnDuration,
}

// ErrEmpty is returned for a catalog without data rows.
var ErrEmpty = errors.New("catalog has no courses")

// CourseRecord is one catalog row.
type CourseRecord struct {
	Title       string
	ShortIntro  string
	URL         string
	Category    string
	SubCategory string
	CourseType  string
	Duration    int
}

// Catalog is the ordered, read-only list of courses.
type Catalog struct {
	records []CourseRecord
}

// Fetcher retrieves raw artifact bytes.
type Fetcher interface {
	Fetch(ctx context.Context, name, source string) ([]byte, error)
}

// New builds a Catalog from records. The slice is copied.
func New(records []CourseRecord) *Catalog {
	return &Catalog{records: append([]CourseRecord(nil), records...)}
}

// Load fetches and parses the catalog. Failures are *artifact.LoadError.
func Load(ctx context.Context, f Fetcher, source string) (*Catalog, error) {
	data, err := f.Fetch(ctx, artifact.NameCatalog, source)
	if err != nil {
		return nil, artifact.NewLoadError(artifact.NameCatalog, source, err)
	}

	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, artifact.NewLoadError(artifact.NameCatalog, source, err)
	}

	logging.Ctx(ctx).Info().
		Int("courses", c.Len()).
		Int("categories", len(c.Categories())).
		Msg("Course catalog loaded")
	return c, nil
}

// Parse reads a catalog CSV. The header decides column order; the seven
// catalog columns are required and other columns are ignored.
func Parse(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []CourseRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if isBlank(row) {
			continue
		}

		rec, err := cols.record(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return &Catalog{records: records}, nil
}

// Records returns the courses in catalog order. The slice must not be
// modified.
func (c *Catalog) Records() []CourseRecord {
	return c.records
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for i := range c.records {
		seen[c.records[i].Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

type columns map[string]int

func resolveColumns(header []string) (columns, error) {
	cols := make(columns, len(requiredColumns))
	for i, name := range header {
		name = cleanCell(name)
		for _, want := range requiredColumns {
			if strings.EqualFold(name, want) {
				if _, dup := cols[want]; dup {
					return nil, fmt.Errorf("duplicate column %q", want)
				}
				cols[want] = i
			}
		}
	}

	var missing []string
	for _, want := range requiredColumns {
		if _, ok := cols[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func (cols columns) cell(row []string, name string) string {
	i := cols[name]
	if i >= len(row) {
		return ""
	}
	return cleanCell(row[i])
}

func (cols columns) record(row []string) (CourseRecord, error) {
	duration, err := parseDuration(cols.cell(row, ColumnDuration))
	if err != nil {
		return CourseRecord{}, err
	}
	rec := CourseRecord{
		Title:       cols.cell(row, ColumnTitle),
		ShortIntro:  cols.cell(row, ColumnShortIntro),
		URL:         cols.cell(row, ColumnURL),
		Category:    cols.cell(row, ColumnCategory),
		SubCategory: cols.cell(row, ColumnSubCategory),
		CourseType:  cols.cell(row, ColumnCourseType),
		Duration:    duration,
	}
	if rec.Category == "" {
		return CourseRecord{}, fmt.Errorf("empty %s", ColumnCategory)
	}
	return rec, nil
}

// parseDuration accepts integers and their float rendering ("8.0").
func parseDuration(v string) (int, error) {
	if v == "" {
		return 0, fmt.Errorf("empty %s", ColumnDuration)
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%s %q is not a whole number", ColumnDuration, v)
	}
	return int(f), nil
}

func cleanCell(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	return strings.TrimSpace(v)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
