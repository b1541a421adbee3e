// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

/*
Package model wraps the category classifier behind the Predictor interface.

The production backend is ONNXPredictor, which runs an ONNX export of the
trained network through ONNX Runtime. The network takes one float32 row of
three features and returns one score per category:

	input:  [1, 3]  (sub-category code, course type code, scaled duration)
	output: [1, N]  (N == number of categories in the mapping bundle)

StaticPredictor returns a fixed score vector and backs tests and smoke runs
where no runtime library is installed.

Argmax turns a score vector into a class index. Ties go to the lowest index.
*/
package model
