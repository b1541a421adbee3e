// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package recommend

import (
	"github.com/tomtom215/coursemate/internal/catalog"
	"github.com/tomtom215/coursemate/internal/mapping"
)

// UnknownCategories returns catalog categories the registry cannot
// produce. Courses in those categories are never recommended.
func UnknownCategories(reg *mapping.Registry, cat *catalog.Catalog) []string {
	var out []string
	for _, c := range cat.Categories() {
		if !reg.HasCategory(c) {
			out = append(out, c)
		}
	}
	return out
}

// UnknownCourseTypes returns catalog course types missing from the
// registry. Requests can never select them when course type filtering is on.
func UnknownCourseTypes(reg *mapping.Registry, cat *catalog.Catalog) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range cat.Records() {
		if seen[rec.CourseType] {
			continue
		}
		seen[rec.CourseType] = true
		if _, ok := reg.EncodeCourseType(rec.CourseType); !ok {
			out = append(out, rec.CourseType)
		}
	}
	return out
}
