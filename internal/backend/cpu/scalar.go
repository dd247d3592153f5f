package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// MulScalar multiplies every element by a scalar.
func (c *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("mulscalar", x, scalar,
		func(v, s float32) float32 { return v * s },
		func(v, s float64) float64 { return v * s })
}

// AddScalar adds a scalar to every element.
func (c *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("addscalar", x, scalar,
		func(v, s float32) float32 { return v + s },
		func(v, s float64) float64 { return v + s })
}

// SubScalar subtracts a scalar from every element.
func (c *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("subscalar", x, scalar,
		func(v, s float32) float32 { return v - s },
		func(v, s float64) float64 { return v - s })
}

// DivScalar divides every element by a scalar.
func (c *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("divscalar", x, scalar,
		func(v, s float32) float32 { return v / s },
		func(v, s float64) float64 { return v / s })
}

// scalarOp applies f to every element with the given scalar, dispatching
// on dtype. The scalar must match the tensor's dtype (or be convertible:
// a float64 literal is accepted for float32 tensors).
func (c *CPUBackend) scalarOp(
	op string,
	x *tensor.RawTensor,
	scalar any,
	f32 func(v, s float32) float32,
	f64 func(v, s float64) float64,
) *tensor.RawTensor {
	out := x
	if !x.IsUnique() {
		out = mustNewRaw(x.Shape(), x.DType())
	}

	switch x.DType() {
	case tensor.Float32:
		s, ok := toFloat32(scalar)
		if !ok {
			panic(fmt.Sprintf("cpu: %s: scalar %T incompatible with float32 tensor", op, scalar))
		}
		xv, ov := x.AsFloat32(), out.AsFloat32()
		for i := range ov {
			ov[i] = f32(xv[i], s)
		}
	case tensor.Float64:
		s, ok := toFloat64(scalar)
		if !ok {
			panic(fmt.Sprintf("cpu: %s: scalar %T incompatible with float64 tensor", op, scalar))
		}
		xv, ov := x.AsFloat64(), out.AsFloat64()
		for i := range ov {
			ov[i] = f64(xv[i], s)
		}
	default:
		panic(fmt.Sprintf("cpu: %s: unsupported dtype %s", op, x.DType()))
	}
	return out
}

func toFloat32(scalar any) (float32, bool) {
	switch s := scalar.(type) {
	case float32:
		return s, true
	case float64:
		return float32(s), true
	case int:
		return float32(s), true
	default:
		return 0, false
	}
}

func toFloat64(scalar any) (float64, bool) {
	switch s := scalar.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	default:
		return 0, false
	}
}
