// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"

	"github.com/ember-ml/ember/tensor"
)

// DefaultFormat renders a regression output as a readable string.
const DefaultFormat = "disease progression: %.2f"

// Pipeline post-processes raw model outputs into user-facing values.
//
// AfterUncollate receives the flattened output values of one prediction
// batch and returns one formatted string per value.
type Pipeline interface {
	AfterUncollate(values []float32) []string
}

// FormatPipeline formats every output value with a printf verb.
type FormatPipeline struct {
	Format string
}

// NewFormatPipeline creates a pipeline using the given printf format.
// An empty format falls back to DefaultFormat.
func NewFormatPipeline(format string) *FormatPipeline {
	if format == "" {
		format = DefaultFormat
	}
	return &FormatPipeline{Format: format}
}

// AfterUncollate formats each value with the pipeline's format string.
func (p *FormatPipeline) AfterUncollate(values []float32) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf(p.Format, v)
	}
	return out
}

// Uncollate flattens a model output tensor back into per-sample values.
func Uncollate[B tensor.Backend](t *tensor.Tensor[float32, B]) []float32 {
	data := t.Data()
	out := make([]float32, len(data))
	copy(out, data)
	return out
}
