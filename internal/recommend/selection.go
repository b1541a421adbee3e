// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package recommend

import (
	"sort"
	"unicode/utf8"

	"github.com/tomtom215/coursemate/internal/catalog"
)

// selectCourses filters the catalog for category and the request, sorts
// the matches by duration keeping catalog order on ties, and projects the
// first MaxResults.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) selectCourses(category string, req Request, maxDuration int) []Recommendation {
	records := e.catalog.Records()
	matches := make([]catalog.CourseRecord, 0, 16)
	for i := range records {
		if e.matches(&records[i], category, req, maxDuration) {
			matches = append(matches, records[i])
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Duration < matches[j].Duration
	})
	if len(matches) > e.config.MaxResults {
		matches = matches[:e.config.MaxResults]
	}

	out := make([]Recommendation, len(matches))
	for i := range matches {
		out[i] = Recommendation{
			Title:      matches[i].Title,
			ShortIntro: Truncate(matches[i].ShortIntro, e.config.IntroLimit, e.config.Ellipsis),
			URL:        matches[i].URL,
		}
	}
	return out
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) matches(rec *catalog.CourseRecord, category string, req Request, maxDuration int) bool {
	if rec.Category != category {
		return false
	}
	if req.Subcategory != "" && rec.SubCategory != req.Subcategory {
		return false
	}
	if e.config.FilterCourseType && rec.CourseType != req.CourseType {
		return false
	}
	if e.config.FilterMaxDuration && rec.Duration > maxDuration {
		return false
	}
	return true
}

// Truncate shortens s to limit characters and appends ellipsis. Strings of
// at most limit characters are returned unchanged.
func Truncate(s string, limit int, ellipsis string) string {
	if limit < 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + ellipsis
		}
		n++
	}
	return s
}
