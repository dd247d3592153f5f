package ops

import "github.com/ember-ml/ember/internal/tensor"

// MulScalarOp records y = x * s.
type MulScalarOp struct {
	In     *tensor.RawTensor
	Out    *tensor.RawTensor
	Scalar any
}

func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.MulScalar(outputGrad, op.Scalar)}
}

func (op *MulScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *MulScalarOp) Output() *tensor.RawTensor   { return op.Out }

// AddScalarOp records y = x + s. The gradient passes through unchanged.
type AddScalarOp struct {
	In  *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}

func (op *AddScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *AddScalarOp) Output() *tensor.RawTensor   { return op.Out }

// SubScalarOp records y = x - s. The gradient passes through unchanged.
type SubScalarOp struct {
	In  *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *SubScalarOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad}
}

func (op *SubScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *SubScalarOp) Output() *tensor.RawTensor   { return op.Out }

// DivScalarOp records y = x / s.
type DivScalarOp struct {
	In     *tensor.RawTensor
	Out    *tensor.RawTensor
	Scalar any
}

func (op *DivScalarOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.DivScalar(outputGrad, op.Scalar)}
}

func (op *DivScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *DivScalarOp) Output() *tensor.RawTensor   { return op.Out }
