package ops

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// SqrtOp records y = sqrt(x). The derivative 1/(2*sqrt(x)) is computed
// from the stored output: dy/dx = 1/(2y).
type SqrtOp struct {
	In  *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.MulScalar(b.Div(outputGrad, op.Out), 0.5)}
}

func (op *SqrtOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *SqrtOp) Output() *tensor.RawTensor   { return op.Out }

// ReLUOp records y = max(0, x). The gradient passes through where the
// input was positive and is zero elsewhere.
type ReLUOp struct {
	In  *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	grad := zerosLike(op.In.Shape(), op.In.DType())

	switch op.In.DType() {
	case tensor.Float32:
		in, g, out := op.In.AsFloat32(), outputGrad.AsFloat32(), grad.AsFloat32()
		for i := range out {
			if in[i] > 0 {
				out[i] = g[i]
			}
		}
	case tensor.Float64:
		in, g, out := op.In.AsFloat64(), outputGrad.AsFloat64(), grad.AsFloat64()
		for i := range out {
			if in[i] > 0 {
				out[i] = g[i]
			}
		}
	default:
		panic(fmt.Sprintf("ops: relu backward: unsupported dtype %s", op.In.DType()))
	}
	return []*tensor.RawTensor{grad}
}

func (op *ReLUOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *ReLUOp) Output() *tensor.RawTensor   { return op.Out }
