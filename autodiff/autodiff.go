// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Wrap any compute backend with New to get a recording backend, run the
// forward pass while the tape records, then call Backward on the loss:
//
//	backend := autodiff.New(cpu.New())
//	backend.GetTape().StartRecording()
//	loss := model.Forward(x) // ... compute loss ...
//	grads, err := autodiff.Backward(loss)
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// Backend decorates an inner backend with gradient recording.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// GradientTape records operations for the backward pass.
type GradientTape = autodiff.GradientTape

// BackwardCapable is a backend carrying a gradient tape.
type BackwardCapable = autodiff.BackwardCapable

// New creates an autodiff backend wrapping the given inner backend.
func New[B tensor.Backend](inner B) *Backend[B] {
	return autodiff.New(inner)
}

// Backward computes gradients of t with respect to every tensor that
// participated in its computation, seeded with ones.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B]) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	return autodiff.Backward(t)
}
