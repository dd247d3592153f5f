package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// Sum reduces the tensor to a 0-D tensor holding the total sum.
func (c *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := mustNewRaw(tensor.Shape{}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		var total float32
		for _, v := range x.AsFloat32() {
			total += v
		}
		out.AsFloat32()[0] = total
	case tensor.Float64:
		var total float64
		for _, v := range x.AsFloat64() {
			total += v
		}
		out.AsFloat64()[0] = total
	default:
		panic(fmt.Sprintf("cpu: sum: unsupported dtype %s", x.DType()))
	}
	return out
}

// SumDim sums along the given dimension.
func (c *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return c.reduceDim("sumdim", x, dim, keepDim, false)
}

// MeanDim averages along the given dimension.
func (c *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return c.reduceDim("meandim", x, dim, keepDim, true)
}

// reduceDim sums along dim, optionally dividing by the dimension size.
//
// Any row-major tensor decomposes around dim as [outer, dimSize, inner];
// the reduction walks that decomposition so no index arithmetic per
// element is needed beyond three nested loops.
func (c *CPUBackend) reduceDim(op string, x *tensor.RawTensor, dim int, keepDim, mean bool) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("cpu: %s: dimension %d out of range for shape %v", op, dim, shape))
	}

	outer, inner := 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	dimSize := shape[dim]

	outShape := make(tensor.Shape, 0, len(shape))
	for i, d := range shape {
		switch {
		case i != dim:
			outShape = append(outShape, d)
		case keepDim:
			outShape = append(outShape, 1)
		}
	}
	out := mustNewRaw(outShape, x.DType())

	switch x.DType() {
	case tensor.Float32:
		xv, ov := x.AsFloat32(), out.AsFloat32()
		for o := 0; o < outer; o++ {
			for in := 0; in < inner; in++ {
				var total float32
				base := o*dimSize*inner + in
				for d := 0; d < dimSize; d++ {
					total += xv[base+d*inner]
				}
				if mean {
					total /= float32(dimSize)
				}
				ov[o*inner+in] = total
			}
		}
	case tensor.Float64:
		xv, ov := x.AsFloat64(), out.AsFloat64()
		for o := 0; o < outer; o++ {
			for in := 0; in < inner; in++ {
				var total float64
				base := o*dimSize*inner + in
				for d := 0; d < dimSize; d++ {
					total += xv[base+d*inner]
				}
				if mean {
					total /= float64(dimSize)
				}
				ov[o*inner+in] = total
			}
		}
	default:
		panic(fmt.Sprintf("cpu: %s: unsupported dtype %s", op, x.DType()))
	}
	return out
}
