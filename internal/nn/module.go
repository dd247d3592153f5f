// Package nn provides neural network building blocks: modules,
// parameters, layers, and loss functions.
//
// Modules operate on float32 tensors. Gradients flow through them when
// the backend records to a gradient tape.
package nn

import "github.com/ember-ml/ember/internal/tensor"

// Module is the interface all network components implement.
type Module[B tensor.Backend] interface {
	// Forward computes the module's output for the given input.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of the module.
	Parameters() []*Parameter[B]
}
