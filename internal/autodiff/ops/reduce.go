package ops

import "github.com/ember-ml/ember/internal/tensor"

// SumOp records a total reduction to a 0-D tensor. Every input element
// contributed with weight 1, so the gradient broadcasts back unchanged.
type SumOp struct {
	In  *tensor.RawTensor
	Out *tensor.RawTensor
}

func (op *SumOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{broadcastTo(outputGrad, op.In.Shape(), b)}
}

func (op *SumOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *SumOp) Output() *tensor.RawTensor   { return op.Out }

// SumDimOp records a sum along one dimension.
type SumDimOp struct {
	In      *tensor.RawTensor
	Out     *tensor.RawTensor
	Dim     int
	KeepDim bool
}

func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	grad := outputGrad
	if !op.KeepDim {
		grad = unsqueeze(grad, op.Dim, b)
	}
	return []*tensor.RawTensor{broadcastTo(grad, op.In.Shape(), b)}
}

func (op *SumDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *SumDimOp) Output() *tensor.RawTensor   { return op.Out }

// MeanDimOp records a mean along one dimension. Each element contributed
// with weight 1/dimSize, so the broadcast gradient is scaled accordingly.
type MeanDimOp struct {
	In      *tensor.RawTensor
	Out     *tensor.RawTensor
	Dim     int
	KeepDim bool
}

func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	grad := outputGrad
	if !op.KeepDim {
		grad = unsqueeze(grad, op.Dim, b)
	}
	grad = broadcastTo(grad, op.In.Shape(), b)
	dimSize := op.In.Shape()[op.Dim]
	return []*tensor.RawTensor{b.DivScalar(grad, float64(dimSize))}
}

func (op *MeanDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.In} }
func (op *MeanDimOp) Output() *tensor.RawTensor   { return op.Out }
