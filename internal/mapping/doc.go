// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

/*
Package mapping holds the lookup tables that translate user input into the
feature encoding the classification model was trained on, and translate the
model's class index back into a category label.

A Registry is built once at startup from a mapping bundle and never mutated.
All lookups are exact: durations absent from the duration table are
unsupported, there is no interpolation between neighbouring keys.

# Bundle Format

The bundle is a JSON document with four named tables:

	{
	  "SUBCATEGORY_MAPPING": {"Machine Learning": 12, "Biology": 3},
	  "COURSE_TYPE_MAPPING": {"Course": 0, "Professional Certificate": 1},
	  "CATEGORY_MAPPING":    {"Data Science": 0, "Life Sciences": 1},
	  "DURATION_MAPPING":    {"4": -0.81, "8": -0.12, "12": 0.57}
	}

CATEGORY_MAPPING is normally written label to index, as produced by the
label encoder. The index to label orientation ({"0": "Data Science"}) is
accepted as well. Category indices must cover 0..n-1 without gaps because
they are the positions of the model's output vector.

# Usage

	reg, err := mapping.Load(ctx, fetcher, cfg.Artifacts.MappingsSource)
	if err != nil {
		return err // *artifact.LoadError, fatal at startup
	}
	code, ok := reg.EncodeSubcategory("Machine Learning")
*/
package mapping
