// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU compute backend.
package cpu

import "github.com/ember-ml/ember/internal/backend/cpu"

// Backend is the CPU implementation of tensor.Backend.
type Backend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *Backend {
	return cpu.New()
}
