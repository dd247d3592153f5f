package autodiff

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// BackwardCapable is a backend that carries a gradient tape. The
// AutodiffBackend satisfies it; plain compute backends do not.
type BackwardCapable interface {
	tensor.Backend
	GetTape() *GradientTape
}

// Backward computes gradients of t with respect to every tensor that
// participated in its computation, seeding the output gradient with
// ones. t is typically a 0-D loss value.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B]) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	backend := t.Backend()
	seed := tensor.Ones[T, B](t.Shape(), backend)
	return backend.GetTape().Backward(t.Raw(), seed.Raw(), backend)
}
