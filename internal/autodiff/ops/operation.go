// Package ops defines the differentiable operations recorded on the
// gradient tape. Each operation knows how to propagate an output
// gradient back to its inputs.
package ops

import "github.com/ember-ml/ember/internal/tensor"

// Operation is a recorded computation on the gradient tape.
//
// Backward receives the gradient of the loss with respect to the
// operation's output and returns the gradients with respect to each
// input, in the same order as Inputs(). The backend passed in must not
// be recording.
type Operation interface {
	Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor
	Inputs() []*tensor.RawTensor
	Output() *tensor.RawTensor
}
