// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package task bundles a model, a loss, and an optimizer into a single
// trainable unit. A task owns everything the trainer needs to run one
// optimization step and everything inference needs to produce readable
// predictions.
package task

import (
	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/data"
	"github.com/ember-ml/ember/metrics"
	"github.com/ember-ml/ember/nn"
	"github.com/ember-ml/ember/optim"
	"github.com/ember-ml/ember/tensor"
)

// Task is a trainable unit. The trainer drives it through Step; users
// call Predict for formatted inference output.
type Task[B autodiff.BackwardCapable] interface {
	// Forward runs the model on a [batch, features] input.
	Forward(features *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Step runs one forward pass on a batch and returns the loss
	// together with the predictions the loss was computed from. The
	// same step serves training, validation, and testing; only the
	// surrounding recording state differs.
	Step(batch *data.Batch[B]) (loss, predictions *tensor.Tensor[float32, B])

	// Predict runs inference on a [batch, features] input and returns
	// one formatted string per row, produced by the attached pipeline.
	Predict(features *tensor.Tensor[float32, B]) []string

	// Parameters returns the model's trainable parameters.
	Parameters() []*nn.Parameter[B]

	// Optimizer returns the task's optimizer.
	Optimizer() optim.Optimizer

	// Metrics returns the evaluation metrics for this task.
	Metrics() []metrics.Metric

	// Pipeline returns the attached output pipeline, or nil.
	Pipeline() data.Pipeline

	// AttachPipeline sets the output pipeline. The trainer attaches
	// the data module's default pipeline when none is set.
	AttachPipeline(p data.Pipeline)
}
