// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package optim provides gradient descent optimizers.
package optim

import (
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/tensor"
)

// Optimizer updates parameters from the gradients of a backward pass.
type Optimizer = optim.Optimizer

type (
	// SGD is stochastic gradient descent with optional momentum.
	SGD[B tensor.Backend] = optim.SGD[B]

	// Adam is the Adam optimizer.
	Adam[B tensor.Backend] = optim.Adam[B]

	// SGDConfig configures SGD.
	SGDConfig = optim.SGDConfig

	// AdamConfig configures Adam.
	AdamConfig = optim.AdamConfig
)

// NewSGD creates an SGD optimizer for the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], cfg SGDConfig) *SGD[B] {
	return optim.NewSGD(params, cfg)
}

// NewAdam creates an Adam optimizer for the given parameters.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], cfg AdamConfig) *Adam[B] {
	return optim.NewAdam(params, cfg)
}
