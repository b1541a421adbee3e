// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package mapping

const validBundle = `{
  "SUBCATEGORY_MAPPING": {"Biology": 0, "Data Analysis": 1, "Machine Learning": 2},
  "COURSE_TYPE_MAPPING": {"Course": 0, "Professional Certificate": 1, "Project": 2, "Specialization": 3},
  "CATEGORY_MAPPING": {"Data Science": 0, "Life Sciences": 1},
  "DURATION_MAPPING": {"4": -0.81, "8": -0.12, "12": 0.57, "20": 1.9}
}`
