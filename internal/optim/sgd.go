package optim

import (
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/tensor"
)

// SGDConfig configures stochastic gradient descent.
type SGDConfig struct {
	LR       float32 // learning rate, default 0.01
	Momentum float32 // momentum coefficient, 0 disables momentum
}

// SGD implements stochastic gradient descent with optional momentum:
//
//	v = momentum*v + grad
//	param = param - lr*v
type SGD[B tensor.Backend] struct {
	params   []*nn.Parameter[B]
	lr       float32
	momentum float32
	velocity map[*tensor.RawTensor][]float32
}

// NewSGD creates an SGD optimizer for the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], cfg SGDConfig) *SGD[B] {
	lr := cfg.LR
	if lr == 0 {
		lr = 0.01
	}
	return &SGD[B]{
		params:   params,
		lr:       lr,
		momentum: cfg.Momentum,
		velocity: make(map[*tensor.RawTensor][]float32),
	}
}

// Step applies one SGD update to every parameter, in place.
func (s *SGD[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) error {
	for _, p := range s.params {
		grad, err := paramGradient(grads, p)
		if err != nil {
			return err
		}
		data := p.Raw().AsFloat32()

		if s.momentum == 0 {
			for i := range data {
				data[i] -= s.lr * grad[i]
			}
			continue
		}

		v, ok := s.velocity[p.Raw()]
		if !ok {
			v = make([]float32, len(data))
			s.velocity[p.Raw()] = v
		}
		for i := range data {
			v[i] = s.momentum*v[i] + grad[i]
			data[i] -= s.lr * v[i]
		}
	}
	return nil
}

// ZeroGrad is a no-op: gradients are dropped with the tape.
func (s *SGD[B]) ZeroGrad() {}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float32 { return s.lr }

// SetLR changes the learning rate.
func (s *SGD[B]) SetLR(lr float32) { s.lr = lr }
