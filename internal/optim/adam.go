package optim

import (
	"math"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/tensor"
)

// AdamConfig configures the Adam optimizer. Zero values fall back to
// the usual defaults: LR 0.001, Beta1 0.9, Beta2 0.999, Epsilon 1e-8.
type AdamConfig struct {
	LR      float32
	Beta1   float32
	Beta2   float32
	Epsilon float32
}

// Adam implements the Adam optimizer with bias-corrected first and
// second moment estimates (Kingma & Ba, 2015).
type Adam[B tensor.Backend] struct {
	params  []*nn.Parameter[B]
	lr      float32
	beta1   float32
	beta2   float32
	epsilon float32
	t       int // step counter for bias correction

	m map[*tensor.RawTensor][]float32 // first moment
	v map[*tensor.RawTensor][]float32 // second moment
}

// NewAdam creates an Adam optimizer for the given parameters.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], cfg AdamConfig) *Adam[B] {
	if cfg.LR == 0 {
		cfg.LR = 0.001
	}
	if cfg.Beta1 == 0 {
		cfg.Beta1 = 0.9
	}
	if cfg.Beta2 == 0 {
		cfg.Beta2 = 0.999
	}
	if cfg.Epsilon == 0 {
		cfg.Epsilon = 1e-8
	}
	return &Adam[B]{
		params:  params,
		lr:      cfg.LR,
		beta1:   cfg.Beta1,
		beta2:   cfg.Beta2,
		epsilon: cfg.Epsilon,
		m:       make(map[*tensor.RawTensor][]float32),
		v:       make(map[*tensor.RawTensor][]float32),
	}
}

// Step applies one Adam update to every parameter, in place.
func (a *Adam[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) error {
	a.t++
	correction1 := 1 - float32(math.Pow(float64(a.beta1), float64(a.t)))
	correction2 := 1 - float32(math.Pow(float64(a.beta2), float64(a.t)))

	for _, p := range a.params {
		grad, err := paramGradient(grads, p)
		if err != nil {
			return err
		}
		data := p.Raw().AsFloat32()

		m, ok := a.m[p.Raw()]
		if !ok {
			m = make([]float32, len(data))
			a.m[p.Raw()] = m
		}
		v, ok := a.v[p.Raw()]
		if !ok {
			v = make([]float32, len(data))
			a.v[p.Raw()] = v
		}

		for i := range data {
			g := grad[i]
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g

			mHat := m[i] / correction1
			vHat := v[i] / correction2
			data[i] -= a.lr * mHat / (float32(math.Sqrt(float64(vHat))) + a.epsilon)
		}
	}
	return nil
}

// ZeroGrad is a no-op: gradients are dropped with the tape.
func (a *Adam[B]) ZeroGrad() {}

// GetLR returns the current learning rate.
func (a *Adam[B]) GetLR() float32 { return a.lr }

// SetLR changes the learning rate.
func (a *Adam[B]) SetLR(lr float32) { a.lr = lr }
