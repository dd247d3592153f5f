package ops

import "github.com/ember-ml/ember/internal/tensor"

// MatMulOp records c = a @ b for 2D tensors.
type MatMulOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	// c = a @ b  =>  da = dc @ b^T,  db = a^T @ dc
	gradA := b.MatMul(outputGrad, b.Transpose(op.B))
	gradB := b.MatMul(b.Transpose(op.A), outputGrad)
	return []*tensor.RawTensor{gradA, gradB}
}

func (op *MatMulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *MatMulOp) Output() *tensor.RawTensor   { return op.Out }
