package ops

import "github.com/ember-ml/ember/internal/tensor"

// AddOp records c = a + b.
type AddOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *AddOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.A.Shape(), b),
		reduceBroadcast(outputGrad, op.B.Shape(), b),
	}
}

func (op *AddOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *AddOp) Output() *tensor.RawTensor   { return op.Out }

// SubOp records c = a - b.
type SubOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *SubOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.A.Shape(), b),
		reduceBroadcast(negate(outputGrad, b), op.B.Shape(), b),
	}
}

func (op *SubOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *SubOp) Output() *tensor.RawTensor   { return op.Out }

// MulOp records c = a * b.
type MulOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *MulOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(b.Mul(outputGrad, op.B), op.A.Shape(), b),
		reduceBroadcast(b.Mul(outputGrad, op.A), op.B.Shape(), b),
	}
}

func (op *MulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *MulOp) Output() *tensor.RawTensor   { return op.Out }

// DivOp records c = a / b.
type DivOp struct {
	A, B *tensor.RawTensor
	Out  *tensor.RawTensor
}

func (op *DivOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	// d/da (a/b) = 1/b
	gradA := b.Div(outputGrad, op.B)
	// d/db (a/b) = -a/b^2
	gradB := negate(b.Div(b.Mul(outputGrad, op.A), b.Mul(op.B, op.B)), b)
	return []*tensor.RawTensor{
		reduceBroadcast(gradA, op.A.Shape(), b),
		reduceBroadcast(gradB, op.B.Shape(), b),
	}
}

func (op *DivOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *DivOp) Output() *tensor.RawTensor   { return op.Out }
