package ops

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// zerosLike allocates a zero-filled tensor with the given shape and dtype.
func zerosLike(shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		panic(fmt.Sprintf("ops: allocating gradient: %v", err))
	}
	return raw
}

// broadcastTo expands t to the target shape by adding it to zeros.
func broadcastTo(t *tensor.RawTensor, shape tensor.Shape, b tensor.Backend) *tensor.RawTensor {
	if t.Shape().Equal(shape) {
		return t
	}
	return b.Add(zerosLike(shape, t.DType()), t)
}

// reduceBroadcast undoes broadcasting: the gradient flowing into a
// broadcast input is the output gradient summed over every broadcast
// axis, restoring the input's original shape.
func reduceBroadcast(grad *tensor.RawTensor, inShape tensor.Shape, b tensor.Backend) *tensor.RawTensor {
	// Sum away leading dimensions the input never had.
	for len(grad.Shape()) > len(inShape) {
		grad = b.SumDim(grad, 0, false)
	}
	// Sum over dimensions the input held at size 1.
	for d := 0; d < len(inShape); d++ {
		if inShape[d] == 1 && grad.Shape()[d] != 1 {
			grad = b.SumDim(grad, d, true)
		}
	}
	return grad
}

// unsqueeze inserts a size-1 dimension at dim.
func unsqueeze(t *tensor.RawTensor, dim int, b tensor.Backend) *tensor.RawTensor {
	shape := t.Shape()
	newShape := make(tensor.Shape, 0, len(shape)+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)
	return b.Reshape(t, newShape)
}

// negate returns -t.
func negate(t *tensor.RawTensor, b tensor.Backend) *tensor.RawTensor {
	return b.MulScalar(t, -1.0)
}
