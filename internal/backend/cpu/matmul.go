package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
func (c *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameDType("matmul", a, b)

	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("cpu: matmul: expected 2D tensors, got %v and %v", aShape, bShape))
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("cpu: matmul: inner dimensions must match: %v @ %v", aShape, bShape))
	}

	m, k, n := aShape[0], aShape[1], bShape[1]
	out := mustNewRaw(tensor.Shape{m, n}, a.DType())

	switch a.DType() {
	case tensor.Float32:
		matmulFloat32(a.AsFloat32(), b.AsFloat32(), out.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmulFloat64(a.AsFloat64(), b.AsFloat64(), out.AsFloat64(), m, k, n)
	default:
		panic(fmt.Sprintf("cpu: matmul: unsupported dtype %s", a.DType()))
	}
	return out
}

// matmulFloat32 is a cache-friendly ikj-order multiplication.
func matmulFloat32(a, b, out []float32, m, k, n int) {
	for i := 0; i < m; i++ {
		aRow := a[i*k : (i+1)*k]
		outRow := out[i*n : (i+1)*n]
		for kk := 0; kk < k; kk++ {
			av := aRow[kk]
			if av == 0 {
				continue
			}
			bRow := b[kk*n : (kk+1)*n]
			for j := 0; j < n; j++ {
				outRow[j] += av * bRow[j]
			}
		}
	}
}

func matmulFloat64(a, b, out []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		aRow := a[i*k : (i+1)*k]
		outRow := out[i*n : (i+1)*n]
		for kk := 0; kk < k; kk++ {
			av := aRow[kk]
			if av == 0 {
				continue
			}
			bRow := b[kk*n : (kk+1)*n]
			for j := 0; j < n; j++ {
				outRow[j] += av * bRow[j]
			}
		}
	}
}
