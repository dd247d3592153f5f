package nn

import "github.com/ember-ml/ember/internal/tensor"

// ReLUBackend is the optional capability backends implement to support
// the ReLU activation.
type ReLUBackend interface {
	ReLU(x *tensor.RawTensor) *tensor.RawTensor
}

// ReLU applies max(0, x) element-wise. Stateless, no parameters.
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a ReLU activation.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies the activation. Panics if the backend does not
// provide ReLU.
func (r *ReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()
	rb, ok := any(backend).(ReLUBackend)
	if !ok {
		panic("nn: relu: backend " + backend.Name() + " does not implement ReLU")
	}
	return tensor.New[float32, B](rb.ReLU(input.Raw()), backend)
}

// Parameters returns nil; ReLU has no trainable parameters.
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}
