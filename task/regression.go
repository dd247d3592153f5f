// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/data"
	"github.com/ember-ml/ember/metrics"
	"github.com/ember-ml/ember/nn"
	"github.com/ember-ml/ember/optim"
	"github.com/ember-ml/ember/tensor"
)

// RegressionConfig configures a regression task. Zero values select
// defaults: a single linear layer sized to the input, MSE loss, SGD
// with learning rate 0.001, and the standard regression metrics.
type RegressionConfig[B autodiff.BackwardCapable] struct {
	Model     nn.Module[B]    // default: Linear(numInputs, 1)
	Optimizer optim.Optimizer // default: SGD with LR
	Metrics   []metrics.Metric
	Pipeline  data.Pipeline
	LR        float32 // learning rate for the default optimizer
	Seed      int64   // weight initialization seed
}

var _ Task[autodiff.BackwardCapable] = (*Regression[autodiff.BackwardCapable])(nil)

// Regression is a regression task: a model trained with MSE loss whose
// predictions are rendered by an output pipeline.
type Regression[B autodiff.BackwardCapable] struct {
	model     nn.Module[B]
	loss      *nn.MSELoss[B]
	optimizer optim.Optimizer
	metrics   []metrics.Metric
	pipeline  data.Pipeline
	backend   B
	numInputs int
}

// NewRegression creates a regression task for numInputs feature columns.
func NewRegression[B autodiff.BackwardCapable](numInputs int, backend B, cfg RegressionConfig[B]) (*Regression[B], error) {
	if numInputs <= 0 {
		return nil, fmt.Errorf("task: regression needs at least one input feature, got %d", numInputs)
	}

	model := cfg.Model
	if model == nil {
		rng := rand.New(rand.NewSource(cfg.Seed))
		model = nn.NewLinear(numInputs, 1, rng, backend)
	}

	opt := cfg.Optimizer
	if opt == nil {
		lr := cfg.LR
		if lr == 0 {
			lr = 0.001
		}
		opt = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: lr})
	}

	taskMetrics := cfg.Metrics
	if taskMetrics == nil {
		taskMetrics = metrics.Defaults()
	}

	return &Regression[B]{
		model:     model,
		loss:      nn.NewMSELoss[B](),
		optimizer: opt,
		metrics:   taskMetrics,
		pipeline:  cfg.Pipeline,
		backend:   backend,
		numInputs: numInputs,
	}, nil
}

// NumInputs returns the number of input features the task was built for.
func (r *Regression[B]) NumInputs() int {
	return r.numInputs
}

// Model returns the underlying model.
func (r *Regression[B]) Model() nn.Module[B] {
	return r.model
}

// Forward runs the model on a [batch, features] input.
func (r *Regression[B]) Forward(features *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return r.model.Forward(features)
}

// Step computes the MSE loss for one batch and returns it with the
// predictions it was computed from.
func (r *Regression[B]) Step(batch *data.Batch[B]) (loss, predictions *tensor.Tensor[float32, B]) {
	predictions = r.Forward(batch.Features)
	return r.loss.Compute(predictions, batch.Targets), predictions
}

// Predict runs inference and returns formatted prediction strings.
// Recording is suspended so inference never grows the tape.
func (r *Regression[B]) Predict(features *tensor.Tensor[float32, B]) []string {
	tape := r.backend.GetTape()
	wasRecording := tape.IsRecording()
	if wasRecording {
		tape.StopRecording()
		defer tape.StartRecording()
	}

	out := r.Forward(features)
	values := data.Uncollate(out)

	pipeline := r.pipeline
	if pipeline == nil {
		pipeline = data.NewFormatPipeline("")
	}
	return pipeline.AfterUncollate(values)
}

// Parameters returns the model's trainable parameters.
func (r *Regression[B]) Parameters() []*nn.Parameter[B] {
	return r.model.Parameters()
}

// Optimizer returns the task's optimizer.
func (r *Regression[B]) Optimizer() optim.Optimizer {
	return r.optimizer
}

// Metrics returns the task's evaluation metrics.
func (r *Regression[B]) Metrics() []metrics.Metric {
	return r.metrics
}

// Pipeline returns the attached output pipeline, or nil.
func (r *Regression[B]) Pipeline() data.Pipeline {
	return r.pipeline
}

// AttachPipeline sets the output pipeline.
func (r *Regression[B]) AttachPipeline(p data.Pipeline) {
	r.pipeline = p
}
