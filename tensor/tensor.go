// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API: typed multi-dimensional
// arrays parameterized over a data type and a compute backend.
package tensor

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/tensor"
)

// Core types re-exported from the internal implementation.
type (
	// Tensor is a typed tensor over data type T and backend B.
	Tensor[T DType, B Backend] = tensor.Tensor[T, B]

	// RawTensor is the untyped low-level tensor representation.
	RawTensor = tensor.RawTensor

	// Shape holds tensor dimensions.
	Shape = tensor.Shape

	// Backend is the compute backend interface.
	Backend = tensor.Backend

	// DataType is runtime type information for tensor elements.
	DataType = tensor.DataType

	// Device identifies a compute device.
	Device = tensor.Device
)

// DType constrains tensor element types.
type DType = tensor.DType

// Supported element types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// CPU is the CPU compute device.
const CPU = tensor.CPU

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw allocates a zero-initialized RawTensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a tensor from a Go slice; the data is copied.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, b)
}

// FromRows creates a [rows, width] tensor from equally sized rows.
func FromRows[T DType, B Backend](rows [][]T, b B) (*Tensor[T, B], error) {
	return tensor.FromRows(rows, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with the given value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Rand creates a tensor with uniform random values in [0, 1).
func Rand[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, rng, b)
}

// Randn creates a tensor with standard normal random values.
func Randn[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, rng, b)
}

// BroadcastShapes applies NumPy-style broadcasting rules to two shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
