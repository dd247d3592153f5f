package nn

import "github.com/ember-ml/ember/internal/tensor"

// Sequential chains modules, feeding each module's output into the next.
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

var (
	_ Module[tensor.Backend] = (*Linear[tensor.Backend])(nil)
	_ Module[tensor.Backend] = (*ReLU[tensor.Backend])(nil)
	_ Module[tensor.Backend] = (*Sequential[tensor.Backend])(nil)
)

// NewSequential creates a sequential container from the given modules.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{modules: modules}
}

// Forward runs the input through every module in order.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	out := input
	for _, m := range s.modules {
		out = m.Forward(out)
	}
	return out
}

// Parameters collects the parameters of all contained modules.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}
