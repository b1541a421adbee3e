// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package model

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/tomtom215/coursemate/internal/logging"
)

// ONNXConfig configures the ONNX Runtime backend.
type ONNXConfig struct {
	// RuntimeLibrary is the path of the onnxruntime shared library. Empty
	// uses the platform default search.
	RuntimeLibrary string

	// InputName and OutputName select the graph tensors. Empty picks the
	// first input and output of the graph.
	InputName  string
	OutputName string
}

var envMu sync.Mutex

// InitRuntime loads the ONNX Runtime library once per process.
func InitRuntime(libraryPath string) error {
	envMu.Lock()
	defer envMu.Unlock()

	if ort.IsInitialized() {
		return nil
	}
	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initialize onnxruntime: %w", err)
	}
	logging.Info().Str("library", libraryPath).Msg("ONNX Runtime initialized")
	return nil
}

// ShutdownRuntime releases the ONNX Runtime environment. Sessions must be
// closed first.
func ShutdownRuntime() error {
	envMu.Lock()
	defer envMu.Unlock()

	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

// ONNXPredictor runs the classifier with ONNX Runtime. The session reuses
// one input and one output tensor, so calls are serialized.
type ONNXPredictor struct {
	mu         sync.Mutex
	session    *ort.AdvancedSession
	input      *ort.Tensor[float32]
	output     *ort.Tensor[float32]
	numClasses int
	closed     bool
}

// NewONNXPredictor builds a session from the serialized model in data.
func NewONNXPredictor(data []byte, cfg ONNXConfig) (*ONNXPredictor, error) {
	if err := InitRuntime(cfg.RuntimeLibrary); err != nil {
		return nil, err
	}

	inputs, outputs, err := ort.GetInputOutputInfoWithONNXData(data)
	if err != nil {
		return nil, fmt.Errorf("inspect model: %w", err)
	}
	in, err := pickTensor(inputs, cfg.InputName, "input")
	if err != nil {
		return nil, err
	}
	out, err := pickTensor(outputs, cfg.OutputName, "output")
	if err != nil {
		return nil, err
	}

	if dims := in.Dimensions; len(dims) == 0 || dims[len(dims)-1] != NumFeatures {
		return nil, fmt.Errorf("%w: model input %q has shape %v", ErrInputShape, in.Name, dims)
	}
	numClasses := 0
	if dims := out.Dimensions; len(dims) > 0 {
		numClasses = int(dims[len(dims)-1])
	}
	if numClasses <= 0 {
		return nil, fmt.Errorf("model output %q has no static class dimension: %v", out.Name, out.Dimensions)
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, NumFeatures))
	if err != nil {
		return nil, fmt.Errorf("allocate input tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(numClasses)))
	if err != nil {
		_ = input.Destroy()
		return nil, fmt.Errorf("allocate output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSessionWithONNXData(data,
		[]string{in.Name}, []string{out.Name},
		[]ort.Value{input}, []ort.Value{output}, nil)
	if err != nil {
		_ = input.Destroy()
		_ = output.Destroy()
		return nil, fmt.Errorf("create session: %w", err)
	}

	logging.Info().
		Str("input", in.Name).
		Str("output", out.Name).
		Int("classes", numClasses).
		Msg("ONNX model loaded")

	return &ONNXPredictor{
		session:    session,
		input:      input,
		output:     output,
		numClasses: numClasses,
	}, nil
}

func pickTensor(infos []ort.InputOutputInfo, name, kind string) (ort.InputOutputInfo, error) {
	if len(infos) == 0 {
		return ort.InputOutputInfo{}, fmt.Errorf("model has no %s", kind)
	}
	if name == "" {
		return infos[0], nil
	}
	for _, info := range infos {
		if info.Name == name {
			return info, nil
		}
	}
	return ort.InputOutputInfo{}, fmt.Errorf("model has no %s named %q", kind, name)
}

// Predict implements Predictor. The context is checked before the run; a
// run in progress cannot be interrupted.
func (p *ONNXPredictor) Predict(ctx context.Context, features []float32) ([]float32, error) {
	if len(features) != NumFeatures {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInputShape, len(features), NumFeatures)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	copy(p.input.GetData(), features)
	if err := p.session.Run(); err != nil {
		return nil, fmt.Errorf("run session: %w", err)
	}
	return append([]float32(nil), p.output.GetData()...), nil
}

// NumClasses implements Predictor.
func (p *ONNXPredictor) NumClasses() int { return p.numClasses }

// Close releases the session and its tensors.
func (p *ONNXPredictor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return errors.Join(p.session.Destroy(), p.input.Destroy(), p.output.Destroy())
}
