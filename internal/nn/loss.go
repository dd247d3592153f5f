package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// MSELoss computes mean squared error: mean((predictions - targets)^2).
//
// The loss is composed from backend operations, so a recording backend
// can differentiate through it. The result is a 0-D tensor.
type MSELoss[B tensor.Backend] struct{}

// NewMSELoss creates a mean squared error loss.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return &MSELoss[B]{}
}

// Compute returns the scalar loss for the given predictions and targets.
// Panics if the shapes differ.
func (l *MSELoss[B]) Compute(predictions, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic(fmt.Sprintf("nn: mse: shape mismatch: predictions %v vs targets %v",
			predictions.Shape(), targets.Shape()))
	}

	diff := predictions.Sub(targets)
	squared := diff.Mul(diff)
	return squared.Mean()
}
