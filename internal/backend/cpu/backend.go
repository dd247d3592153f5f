// Package cpu implements a pure Go CPU backend for tensor operations.
//
// The backend operates on RawTensor values and supports float32 and
// float64 data. Element-wise operations mutate the input in place when
// its buffer is uniquely referenced, avoiding allocations in hot loops.
package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// CPUBackend implements tensor.Backend using pure Go.
type CPUBackend struct{}

var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the device this backend computes on.
func (c *CPUBackend) Device() tensor.Device {
	return tensor.CPU
}

// mustNewRaw allocates a RawTensor or panics. Backend ops have no error
// return; allocation failure means an invalid shape, which callers are
// expected to have validated.
func mustNewRaw(shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		panic(fmt.Sprintf("cpu: allocating tensor: %v", err))
	}
	return raw
}

// checkSameDType panics if the two tensors have different data types.
func checkSameDType(op string, a, b *tensor.RawTensor) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("cpu: %s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}
}
