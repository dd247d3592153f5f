// Package autodiff implements reverse-mode automatic differentiation as
// a backend decorator.
//
// AutodiffBackend wraps any tensor.Backend and records each operation on
// a GradientTape while recording is active. The backward pass walks the
// tape in reverse and accumulates gradients. Because it is itself a
// tensor.Backend, all tensor code runs unchanged on top of it.
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/tensor"
)

// AutodiffBackend decorates an inner backend with gradient recording.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

var _ tensor.Backend = (*AutodiffBackend[tensor.Backend])(nil)

// New creates an autodiff backend wrapping the given inner backend.
func New[B tensor.Backend](inner B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: inner,
		tape:  NewGradientTape(),
	}
}

// GetTape returns the gradient tape.
func (a *AutodiffBackend[B]) GetTape() *GradientTape {
	return a.tape
}

// Inner returns the wrapped backend. The backward pass runs on the
// inner backend directly, outside of recording.
func (a *AutodiffBackend[B]) Inner() B {
	return a.inner
}

// Name returns the backend name, including the wrapped backend.
func (a *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + a.inner.Name() + ")"
}

// Device returns the wrapped backend's device.
func (a *AutodiffBackend[B]) Device() tensor.Device {
	return a.inner.Device()
}

// Add performs element-wise addition, recording the operation.
func (a *AutodiffBackend[B]) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	if a.tape.IsRecording() {
		// Keep output distinct from inputs: inplace reuse would
		// overwrite values the backward pass reads.
		defer x.ForceNonUnique()()
		out := a.inner.Add(x, y)
		a.tape.Record(&ops.AddOp{A: x, B: y, Out: out})
		return out
	}
	return a.inner.Add(x, y)
}

// Sub performs element-wise subtraction, recording the operation.
func (a *AutodiffBackend[B]) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := a.inner.Sub(x, y)
		a.tape.Record(&ops.SubOp{A: x, B: y, Out: out})
		return out
	}
	return a.inner.Sub(x, y)
}

// Mul performs element-wise multiplication, recording the operation.
func (a *AutodiffBackend[B]) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := a.inner.Mul(x, y)
		a.tape.Record(&ops.MulOp{A: x, B: y, Out: out})
		return out
	}
	return a.inner.Mul(x, y)
}

// Div performs element-wise division, recording the operation.
func (a *AutodiffBackend[B]) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := a.inner.Div(x, y)
		a.tape.Record(&ops.DivOp{A: x, B: y, Out: out})
		return out
	}
	return a.inner.Div(x, y)
}

// MatMul performs matrix multiplication, recording the operation.
func (a *AutodiffBackend[B]) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := a.inner.MatMul(x, y)
	if a.tape.IsRecording() {
		a.tape.Record(&ops.MatMulOp{A: x, B: y, Out: out})
	}
	return out
}

// Reshape changes the tensor's shape, recording the operation.
func (a *AutodiffBackend[B]) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	out := a.inner.Reshape(t, newShape)
	if a.tape.IsRecording() {
		a.tape.Record(&ops.ReshapeOp{In: t, Out: out})
	}
	return out
}

// Transpose permutes dimensions, recording the operation.
func (a *AutodiffBackend[B]) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	out := a.inner.Transpose(t, axes...)
	if a.tape.IsRecording() {
		resolved := axes
		if len(resolved) == 0 {
			rank := len(t.Shape())
			resolved = make([]int, rank)
			for i := range resolved {
				resolved[i] = rank - 1 - i
			}
		}
		a.tape.Record(&ops.TransposeOp{In: t, Out: out, Axes: resolved})
	}
	return out
}

// MulScalar multiplies by a scalar, recording the operation.
func (a *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := a.inner.MulScalar(x, scalar)
		a.tape.Record(&ops.MulScalarOp{In: x, Out: out, Scalar: scalar})
		return out
	}
	return a.inner.MulScalar(x, scalar)
}

// AddScalar adds a scalar, recording the operation.
func (a *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := a.inner.AddScalar(x, scalar)
		a.tape.Record(&ops.AddScalarOp{In: x, Out: out})
		return out
	}
	return a.inner.AddScalar(x, scalar)
}

// SubScalar subtracts a scalar, recording the operation.
func (a *AutodiffBackend[B]) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := a.inner.SubScalar(x, scalar)
		a.tape.Record(&ops.SubScalarOp{In: x, Out: out})
		return out
	}
	return a.inner.SubScalar(x, scalar)
}

// DivScalar divides by a scalar, recording the operation.
func (a *AutodiffBackend[B]) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := a.inner.DivScalar(x, scalar)
		a.tape.Record(&ops.DivScalarOp{In: x, Out: out, Scalar: scalar})
		return out
	}
	return a.inner.DivScalar(x, scalar)
}

// Sqrt computes the element-wise square root, recording the operation.
func (a *AutodiffBackend[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := a.inner.Sqrt(x)
		a.tape.Record(&ops.SqrtOp{In: x, Out: out})
		return out
	}
	return a.inner.Sqrt(x)
}

// Sum reduces to a 0-D total, recording the operation.
func (a *AutodiffBackend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := a.inner.Sum(x)
	if a.tape.IsRecording() {
		a.tape.Record(&ops.SumOp{In: x, Out: out})
	}
	return out
}

// SumDim sums along a dimension, recording the operation.
func (a *AutodiffBackend[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := a.inner.SumDim(x, dim, keepDim)
	if a.tape.IsRecording() {
		a.tape.Record(&ops.SumDimOp{In: x, Out: out, Dim: dim, KeepDim: keepDim})
	}
	return out
}

// MeanDim averages along a dimension, recording the operation.
func (a *AutodiffBackend[B]) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := a.inner.MeanDim(x, dim, keepDim)
	if a.tape.IsRecording() {
		a.tape.Record(&ops.MeanDimOp{In: x, Out: out, Dim: dim, KeepDim: keepDim})
	}
	return out
}

// ReLU computes max(0, x), recording the operation. Available when the
// inner backend provides it.
func (a *AutodiffBackend[B]) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	relu, ok := any(a.inner).(interface {
		ReLU(*tensor.RawTensor) *tensor.RawTensor
	})
	if !ok {
		panic("autodiff: inner backend " + a.inner.Name() + " does not implement ReLU")
	}
	if a.tape.IsRecording() {
		defer x.ForceNonUnique()()
		out := relu.ReLU(x)
		a.tape.Record(&ops.ReLUOp{In: x, Out: out})
		return out
	}
	return relu.ReLU(x)
}
