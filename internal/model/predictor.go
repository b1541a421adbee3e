// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package model

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// NumFeatures is the width of the model input row.
const NumFeatures = 3

var (
	// ErrClosed is returned by Predict after Close.
	ErrClosed = errors.New("predictor closed")

	// ErrInputShape is returned for feature vectors of the wrong width.
	ErrInputShape = errors.New("feature vector has wrong width")
)

// Predictor scores one feature vector. Implementations are safe for
// concurrent use.
type Predictor interface {
	Predict(ctx context.Context, features []float32) ([]float32, error)
	NumClasses() int
	Close() error
}

// Argmax returns the index of the highest score. Ties resolve to the first
// maximum and NaN never wins. ok is false when no score is comparable.
func Argmax(scores []float32) (idx int, ok bool) {
	idx = -1
	var best float32
	for i, s := range scores {
		if math.IsNaN(float64(s)) {
			continue
		}
		if idx < 0 || s > best {
			idx, best = i, s
		}
	}
	return idx, idx >= 0
}

// StaticPredictor always returns the same scores.
type StaticPredictor struct {
	scores []float32
	calls  atomic.Int64
	closed atomic.Bool
}

// NewStaticPredictor returns a predictor that answers with scores.
func NewStaticPredictor(scores []float32) *StaticPredictor {
	return &StaticPredictor{scores: append([]float32(nil), scores...)}
}

// NewOneHotPredictor returns a predictor that always picks class out of
// numClasses.
func NewOneHotPredictor(class, numClasses int) (*StaticPredictor, error) {
	if numClasses <= 0 || class < 0 || class >= numClasses {
		return nil, fmt.Errorf("class %d outside 0..%d", class, numClasses-1)
	}
	scores := make([]float32, numClasses)
	scores[class] = 1
	return NewStaticPredictor(scores), nil
}

// Predict implements Predictor.
func (p *StaticPredictor) Predict(ctx context.Context, features []float32) ([]float32, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(features) != NumFeatures {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInputShape, len(features), NumFeatures)
	}
	p.calls.Add(1)
	return append([]float32(nil), p.scores...), nil
}

// NumClasses implements Predictor.
func (p *StaticPredictor) NumClasses() int { return len(p.scores) }

// Close implements Predictor.
func (p *StaticPredictor) Close() error {
	p.closed.Store(true)
	return nil
}

// Calls returns how many predictions were served.
func (p *StaticPredictor) Calls() int64 { return p.calls.Load() }
