package ops

import "github.com/ember-ml/ember/internal/tensor"

// ReshapeOp records a reshape. The gradient is reshaped back to the
// input's original shape.
type ReshapeOp struct {
	In  *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Reshape(outputGrad, op.In.Shape())}
}

func (op *ReshapeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *ReshapeOp) Output() *tensor.RawTensor   { return op.Out }

// TransposeOp records an axis permutation. The gradient is transposed
// with the inverse permutation.
type TransposeOp struct {
	In   *tensor.RawTensor
	Out  *tensor.RawTensor
	Axes []int // resolved permutation, never empty
}

func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.Axes))
	for i, a := range op.Axes {
		inverse[a] = i
	}
	return []*tensor.RawTensor{b.Transpose(outputGrad, inverse...)}
}

func (op *TransposeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *TransposeOp) Output() *tensor.RawTensor   { return op.Out }
