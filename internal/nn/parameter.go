package nn

import "github.com/ember-ml/ember/internal/tensor"

// Parameter is a named trainable tensor.
//
// The optimizer looks gradients up by the identity of the parameter's
// underlying RawTensor, so the tensor is updated in place rather than
// replaced.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
}

// NewParameter wraps a tensor as a named parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t}
}

// Name returns the parameter's name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the underlying tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Raw returns the parameter's RawTensor, the identity key optimizers
// use to find its gradient.
func (p *Parameter[B]) Raw() *tensor.RawTensor {
	return p.tensor.Raw()
}
