package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// Add performs element-wise addition with broadcasting.
func (c *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryOp("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryOp("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryOp("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE 754 semantics (Inf/NaN).
func (c *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryOp("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// binaryOp dispatches an element-wise binary operation on dtype, handling
// broadcasting and the in-place fast path.
func (c *CPUBackend) binaryOp(
	op string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
) *tensor.RawTensor {
	checkSameDType(op, a, b)

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("cpu: %s: %v", op, err))
	}

	if !needsBroadcast {
		// Same shapes: reuse a's buffer when nothing else holds it.
		out := a
		if !a.IsUnique() {
			out = mustNewRaw(outShape, a.DType())
		}
		switch a.DType() {
		case tensor.Float32:
			av, bv, ov := a.AsFloat32(), b.AsFloat32(), out.AsFloat32()
			for i := range ov {
				ov[i] = f32(av[i], bv[i])
			}
		case tensor.Float64:
			av, bv, ov := a.AsFloat64(), b.AsFloat64(), out.AsFloat64()
			for i := range ov {
				ov[i] = f64(av[i], bv[i])
			}
		default:
			panic(fmt.Sprintf("cpu: %s: unsupported dtype %s", op, a.DType()))
		}
		return out
	}

	out := mustNewRaw(outShape, a.DType())
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	outStrides := outShape.ComputeStrides()

	switch a.DType() {
	case tensor.Float32:
		av, bv, ov := a.AsFloat32(), b.AsFloat32(), out.AsFloat32()
		for i := range ov {
			ai, bi := broadcastIndices(i, outStrides, aStrides, bStrides)
			ov[i] = f32(av[ai], bv[bi])
		}
	case tensor.Float64:
		av, bv, ov := a.AsFloat64(), b.AsFloat64(), out.AsFloat64()
		for i := range ov {
			ai, bi := broadcastIndices(i, outStrides, aStrides, bStrides)
			ov[i] = f64(av[ai], bv[bi])
		}
	default:
		panic(fmt.Sprintf("cpu: %s: unsupported dtype %s", op, a.DType()))
	}
	return out
}

// broadcastStrides computes the strides of src when broadcast to outShape.
// Dimensions of size 1 (or missing leading dimensions) get stride 0, so
// the same source element is reused along the broadcast axis.
func broadcastStrides(src, outShape tensor.Shape) []int {
	srcStrides := src.ComputeStrides()
	strides := make([]int, len(outShape))
	offset := len(outShape) - len(src)
	for i := range outShape {
		if i < offset {
			continue // missing leading dim, stride stays 0
		}
		if src[i-offset] == 1 && outShape[i] != 1 {
			continue
		}
		strides[i] = srcStrides[i-offset]
	}
	return strides
}

// broadcastIndices maps a flat output index to flat indices into the two
// broadcast inputs.
func broadcastIndices(flat int, outStrides, aStrides, bStrides []int) (int, int) {
	ai, bi := 0, 0
	rem := flat
	for d := range outStrides {
		idx := rem / outStrides[d]
		rem %= outStrides[d]
		ai += idx * aStrides[d]
		bi += idx * bStrides[d]
	}
	return ai, bi
}
