// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package mapping

import (
	"fmt"
	"sort"
)

// Registry is the immutable set of encoding tables. It is safe for
// concurrent use.
type Registry struct {
	subcategories map[string]int
	courseTypes   map[string]int
	categories    map[int]string
	durations     map[int]float64
}

// New builds a Registry from the four tables. The maps are copied. Every
// table must be non-empty, category labels must be unique and category
// indices must be exactly 0..len-1.
func New(subcategories, courseTypes map[string]int, categories map[int]string, durations map[int]float64) (*Registry, error) {
	switch {
	case len(subcategories) == 0:
		return nil, fmt.Errorf("%s: %w", TableSubcategory, ErrEmptyTable)
	case len(courseTypes) == 0:
		return nil, fmt.Errorf("%s: %w", TableCourseType, ErrEmptyTable)
	case len(categories) == 0:
		return nil, fmt.Errorf("%s: %w", TableCategory, ErrEmptyTable)
	case len(durations) == 0:
		return nil, fmt.Errorf("%s: %w", TableDuration, ErrEmptyTable)
	}

	seen := make(map[string]int, len(categories))
	for idx, label := range categories {
		if idx < 0 || idx >= len(categories) {
			return nil, fmt.Errorf("%s: index %d outside 0..%d", TableCategory, idx, len(categories)-1)
		}
		if label == "" {
			return nil, fmt.Errorf("%s: index %d has an empty label", TableCategory, idx)
		}
		if other, dup := seen[label]; dup {
			return nil, fmt.Errorf("%s: label %q used by indices %d and %d", TableCategory, label, other, idx)
		}
		seen[label] = idx
	}

	r := &Registry{
		subcategories: make(map[string]int, len(subcategories)),
		courseTypes:   make(map[string]int, len(courseTypes)),
		categories:    make(map[int]string, len(categories)),
		durations:     make(map[int]float64, len(durations)),
	}
	for k, v := range subcategories {
		r.subcategories[k] = v
	}
	for k, v := range courseTypes {
		r.courseTypes[k] = v
	}
	for k, v := range categories {
		r.categories[k] = v
	}
	for k, v := range durations {
		r.durations[k] = v
	}
	return r, nil
}

// EncodeSubcategory returns the training code of a sub-category.
func (r *Registry) EncodeSubcategory(name string) (int, bool) {
	code, ok := r.subcategories[name]
	return code, ok
}

// EncodeCourseType returns the training code of a course type.
func (r *Registry) EncodeCourseType(name string) (int, bool) {
	code, ok := r.courseTypes[name]
	return code, ok
}

// ScaleDuration returns the standardized score of a duration. Only exact
// table keys are supported.
func (r *Registry) ScaleDuration(d int) (float64, bool) {
	score, ok := r.durations[d]
	return score, ok
}

// DecodeCategory returns the label of a model class index. A miss means the
// model and the mapping bundle disagree.
func (r *Registry) DecodeCategory(idx int) (string, bool) {
	label, ok := r.categories[idx]
	return label, ok
}

// NumCategories is the number of classes the model must produce.
func (r *Registry) NumCategories() int {
	return len(r.categories)
}

// Subcategories returns the known sub-categories, sorted.
func (r *Registry) Subcategories() []string {
	return sortedKeys(r.subcategories)
}

// CourseTypes returns the known course types, sorted.
func (r *Registry) CourseTypes() []string {
	return sortedKeys(r.courseTypes)
}

// Categories returns the category labels ordered by class index.
func (r *Registry) Categories() []string {
	out := make([]string, len(r.categories))
	for idx, label := range r.categories {
		out[idx] = label
	}
	return out
}

// Durations returns the supported durations in ascending order.
func (r *Registry) Durations() []int {
	out := make([]int, 0, len(r.durations))
	for d := range r.durations {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// HasCategory reports whether label is a known category.
func (r *Registry) HasCategory(label string) bool {
	for _, l := range r.categories {
		if l == label {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
