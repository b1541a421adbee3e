// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

// Package recommend implements the course recommendation pipeline.
//
// # Pipeline
//
// Every request passes the same gates in order, and the first failing gate
// ends the request:
//
//  1. Presence: sub-category, course type and duration must be non-blank.
//  2. Duration: must be an exact integer ("8", not "8.5" or "eight").
//  3. Encoding: every value must exist in the mapping registry.
//  4. Inference: the feature vector [sub-category, course type, duration]
//     is scored by the model and the best class is decoded to a category.
//  5. Selection: catalog rows of that category (and sub-category, and
//     optionally course type and maximum duration) are stably sorted by
//     duration, cut to MaxResults and projected with a truncated intro.
//
// Gates 1 to 3 fail with *ValidationError, which is the caller's fault.
// A failure in gate 4, such as a class index the registry cannot decode,
// is an *InternalError. An empty selection is a normal result.
//
// # Thread Safety
//
// The registry, catalog and predictor are read-only after construction, so
// an Engine serves concurrent requests without locking. The prediction
// cache synchronizes internally.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), reg, cat, predictor, logger)
//	if err != nil {
//	    return err
//	}
//	res, err := engine.Recommend(ctx, recommend.Request{
//	    Subcategory: "Machine Learning",
//	    CourseType:  "Course",
//	    Duration:    "8",
//	})
//	switch {
//	case errors.Is(err, recommend.ErrValidation):
//	    // 400
//	case err != nil:
//	    // 500
//	}
package recommend
