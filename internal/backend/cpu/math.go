package cpu

import (
	"fmt"
	"math"

	"github.com/ember-ml/ember/internal/tensor"
)

// Sqrt computes the element-wise square root.
// Negative inputs produce NaN, following math.Sqrt.
func (c *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	out := x
	if !x.IsUnique() {
		out = mustNewRaw(x.Shape(), x.DType())
	}

	switch x.DType() {
	case tensor.Float32:
		xv, ov := x.AsFloat32(), out.AsFloat32()
		for i := range ov {
			ov[i] = float32(math.Sqrt(float64(xv[i])))
		}
	case tensor.Float64:
		xv, ov := x.AsFloat64(), out.AsFloat64()
		for i := range ov {
			ov[i] = math.Sqrt(xv[i])
		}
	default:
		panic(fmt.Sprintf("cpu: sqrt: unsupported dtype %s", x.DType()))
	}
	return out
}

// ReLU computes max(0, x) element-wise.
//
// ReLU is not part of the tensor.Backend interface; callers discover it
// through an interface assertion, so backends without it still satisfy
// the core contract.
func (c *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	out := x
	if !x.IsUnique() {
		out = mustNewRaw(x.Shape(), x.DType())
	}

	switch x.DType() {
	case tensor.Float32:
		xv, ov := x.AsFloat32(), out.AsFloat32()
		for i := range ov {
			if xv[i] > 0 {
				ov[i] = xv[i]
			} else {
				ov[i] = 0
			}
		}
	case tensor.Float64:
		xv, ov := x.AsFloat64(), out.AsFloat64()
		for i := range ov {
			if xv[i] > 0 {
				ov[i] = xv[i]
			} else {
				ov[i] = 0
			}
		}
	default:
		panic(fmt.Sprintf("cpu: relu: unsupported dtype %s", x.DType()))
	}
	return out
}
