// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package data provides datasets, batching, and the data module that
// connects them to tasks: train/validation/test splits, a batch loader
// with optional worker parallelism, and output post-processing.
package data

import "fmt"

// TabularDataset is an in-memory dataset of float32 feature rows with a
// scalar regression target per row.
type TabularDataset struct {
	columns []string
	rows    [][]float32
	targets []float32
}

// NewTabularDataset creates a dataset from named feature columns, rows,
// and per-row targets. Every row must have one value per column.
func NewTabularDataset(columns []string, rows [][]float32, targets []float32) (*TabularDataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("data: dataset needs at least one feature column")
	}
	if len(rows) != len(targets) {
		return nil, fmt.Errorf("data: %d rows but %d targets", len(rows), len(targets))
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("data: row %d has %d values, want %d", i, len(row), len(columns))
		}
	}

	return &TabularDataset{
		columns: columns,
		rows:    rows,
		targets: targets,
	}, nil
}

// Len returns the number of rows.
func (d *TabularDataset) Len() int {
	return len(d.rows)
}

// NumFeatures returns the number of feature columns.
func (d *TabularDataset) NumFeatures() int {
	return len(d.columns)
}

// Columns returns the feature column names.
func (d *TabularDataset) Columns() []string {
	return d.columns
}

// Row returns the feature values of row i.
func (d *TabularDataset) Row(i int) []float32 {
	return d.rows[i]
}

// Target returns the regression target of row i.
func (d *TabularDataset) Target(i int) float32 {
	return d.targets[i]
}

// Targets returns all regression targets.
func (d *TabularDataset) Targets() []float32 {
	return d.targets
}

// Select returns a new dataset containing the given rows, in order.
// Row data is shared with the original dataset.
func (d *TabularDataset) Select(indices []int) (*TabularDataset, error) {
	rows := make([][]float32, len(indices))
	targets := make([]float32, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(d.rows) {
			return nil, fmt.Errorf("data: index %d out of range [0, %d)", idx, len(d.rows))
		}
		rows[i] = d.rows[idx]
		targets[i] = d.targets[idx]
	}
	return &TabularDataset{
		columns: d.columns,
		rows:    rows,
		targets: targets,
	}, nil
}
