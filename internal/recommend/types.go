// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package recommend

import "strings"

// Request is one recommendation query. Duration is kept as text until the
// engine parses it.
type Request struct {
	Subcategory string `json:"subcategory" validate:"notblank"`
	CourseType  string `json:"course_type" validate:"notblank"`
	Duration    string `json:"duration" validate:"notblank"`
}

func (r Request) trimmed() Request {
	return Request{
		Subcategory: strings.TrimSpace(r.Subcategory),
		CourseType:  strings.TrimSpace(r.CourseType),
		Duration:    strings.TrimSpace(r.Duration),
	}
}

// Recommendation is one recommended course.
type Recommendation struct {
	Title      string `json:"title"`
	ShortIntro string `json:"short_intro"`
	URL        string `json:"url"`
}

// Result is the answer to a Request. Courses is never nil.
type Result struct {
	PredictedCategory string           `json:"predicted_category"`
	Courses           []Recommendation `json:"recommended_courses"`
}

// Options lists the inputs the engine understands.
type Options struct {
	Subcategories []string `json:"subcategories"`
	CourseTypes   []string `json:"course_types"`
	Durations     []int    `json:"durations"`
	DurationUnit  string   `json:"duration_unit"`
}
