// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metrics provides regression evaluation metrics.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metric scores predicted values against actual values. Both slices
// must have the same length.
type Metric interface {
	Name() string
	Compute(predicted, actual []float64) float64
}

// MAE is mean absolute error.
type MAE struct{}

// Name returns "mae".
func (MAE) Name() string { return "mae" }

// Compute returns the mean of |predicted - actual|.
func (MAE) Compute(predicted, actual []float64) float64 {
	if len(predicted) == 0 {
		return math.NaN()
	}
	total := 0.0
	for i := range predicted {
		total += math.Abs(predicted[i] - actual[i])
	}
	return total / float64(len(predicted))
}

// RMSE is root mean squared error.
type RMSE struct{}

// Name returns "rmse".
func (RMSE) Name() string { return "rmse" }

// Compute returns sqrt(mean((predicted - actual)^2)).
func (RMSE) Compute(predicted, actual []float64) float64 {
	if len(predicted) == 0 {
		return math.NaN()
	}
	diff := make([]float64, len(predicted))
	floats.SubTo(diff, predicted, actual)
	total := floats.Dot(diff, diff)
	return math.Sqrt(total / float64(len(predicted)))
}

// RSquared is the coefficient of determination.
type RSquared struct{}

// Name returns "r2".
func (RSquared) Name() string { return "r2" }

// Compute returns 1 - SS_res/SS_tot. A constant actual slice yields NaN.
func (RSquared) Compute(predicted, actual []float64) float64 {
	if len(predicted) == 0 {
		return math.NaN()
	}
	mean := stat.Mean(actual, nil)

	ssRes, ssTot := 0.0, 0.0
	for i := range actual {
		res := actual[i] - predicted[i]
		tot := actual[i] - mean
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		return math.NaN()
	}
	return 1 - ssRes/ssTot
}

// Defaults returns the standard regression metric set.
func Defaults() []Metric {
	return []Metric{MAE{}, RMSE{}, RSquared{}}
}
