// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package nn provides neural network layers, parameters, and losses.
package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/tensor"
)

type (
	// Module is the interface all network components implement.
	Module[B tensor.Backend] = nn.Module[B]

	// Parameter is a named trainable tensor.
	Parameter[B tensor.Backend] = nn.Parameter[B]

	// Linear is a fully connected layer: y = x @ W^T + bias.
	Linear[B tensor.Backend] = nn.Linear[B]

	// ReLU applies max(0, x) element-wise.
	ReLU[B tensor.Backend] = nn.ReLU[B]

	// Sequential chains modules in order.
	Sequential[B tensor.Backend] = nn.Sequential[B]

	// MSELoss computes mean squared error.
	MSELoss[B tensor.Backend] = nn.MSELoss[B]
)

// ReLUBackend is the optional backend capability for ReLU.
type ReLUBackend = nn.ReLUBackend

// NewParameter wraps a tensor as a named parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// NewLinear creates a linear layer with Xavier-initialized weights.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, b B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, rng, b)
}

// NewReLU creates a ReLU activation.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// NewSequential creates a sequential container from the given modules.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// NewMSELoss creates a mean squared error loss.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return nn.NewMSELoss[B]()
}

// XavierUniform initializes a tensor with Xavier/Glorot uniform values.
func XavierUniform[B tensor.Backend](shape tensor.Shape, fanIn, fanOut int, rng *rand.Rand, b B) *tensor.Tensor[float32, B] {
	return nn.XavierUniform(shape, fanIn, fanOut, rng, b)
}
