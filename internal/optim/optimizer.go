// Package optim implements gradient descent optimizers.
//
// Optimizers update parameters in place from the gradient map produced
// by the autodiff backward pass, keyed by RawTensor identity.
package optim

import (
	"fmt"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/tensor"
)

// Optimizer updates parameters from gradients.
type Optimizer interface {
	// Step applies one update using the gradients from a backward pass.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor) error

	// ZeroGrad resets transient gradient state. With tape-based
	// autodiff, gradients live on the tape and are dropped by
	// tape.Clear; implementations keep this for API symmetry.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32

	// SetLR changes the learning rate, e.g. for schedules.
	SetLR(lr float32)
}

var (
	_ Optimizer = (*SGD[tensor.Backend])(nil)
	_ Optimizer = (*Adam[tensor.Backend])(nil)
)

// paramGradient finds the gradient for a parameter in the gradient map.
func paramGradient[B tensor.Backend](grads map[*tensor.RawTensor]*tensor.RawTensor, p *nn.Parameter[B]) ([]float32, error) {
	g, ok := grads[p.Raw()]
	if !ok {
		return nil, fmt.Errorf("optim: no gradient for parameter %q", p.Name())
	}
	if !g.Shape().Equal(p.Raw().Shape()) {
		return nil, fmt.Errorf("optim: gradient shape %v does not match parameter %q shape %v",
			g.Shape(), p.Name(), p.Raw().Shape())
	}
	return g.AsFloat32(), nil
}
