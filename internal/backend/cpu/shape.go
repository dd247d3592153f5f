package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// Reshape returns a tensor with the same data and a new shape.
// The data is copied so the result owns its buffer.
func (c *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cpu: reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			t.Shape(), t.NumElements(), newShape, newShape.NumElements()))
	}

	out := mustNewRaw(newShape, t.DType())
	copy(out.Data(), t.Data()[:t.ByteSize()])
	return out
}

// Transpose permutes the tensor's dimensions.
// With no axes, all dimensions are reversed.
func (c *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	rank := len(shape)

	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		panic(fmt.Sprintf("cpu: transpose: expected %d axes, got %d", rank, len(axes)))
	}
	seen := make([]bool, rank)
	for _, a := range axes {
		if a < 0 || a >= rank || seen[a] {
			panic(fmt.Sprintf("cpu: transpose: invalid axes %v for rank %d", axes, rank))
		}
		seen[a] = true
	}

	outShape := make(tensor.Shape, rank)
	for i, a := range axes {
		outShape[i] = shape[a]
	}
	out := mustNewRaw(outShape, t.DType())

	if rank <= 1 {
		copy(out.Data(), t.Data()[:t.ByteSize()])
		return out
	}

	// Walk output positions in order, gathering from the permuted source.
	srcStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()

	switch t.DType() {
	case tensor.Float32:
		src, dst := t.AsFloat32(), out.AsFloat32()
		for i := range dst {
			dst[i] = src[permutedIndex(i, outStrides, srcStrides, axes)]
		}
	case tensor.Float64:
		src, dst := t.AsFloat64(), out.AsFloat64()
		for i := range dst {
			dst[i] = src[permutedIndex(i, outStrides, srcStrides, axes)]
		}
	default:
		panic(fmt.Sprintf("cpu: transpose: unsupported dtype %s", t.DType()))
	}
	return out
}

// permutedIndex maps a flat output index to the flat source index under
// the axis permutation: output dimension i reads source dimension axes[i].
func permutedIndex(flat int, outStrides, srcStrides []int, axes []int) int {
	src := 0
	rem := flat
	for d := range outStrides {
		idx := rem / outStrides[d]
		rem %= outStrides[d]
		src += idx * srcStrides[axes[d]]
	}
	return src
}
