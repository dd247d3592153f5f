// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package diabetes ships a bundled regression dataset: 442 patients
// with ten standardized baseline measurements and a quantitative
// disease progression score one year after baseline.
package diabetes

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/ember-ml/ember/data"
)

//go:embed diabetes.csv
var raw string

// Load parses the bundled dataset into a TabularDataset with feature
// columns age, sex, bmi, bp, s1..s6 and the disease progression target.
func Load() (*data.TabularDataset, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("diabetes: parsing bundled csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("diabetes: bundled csv has no data rows")
	}

	header := records[0]
	if header[len(header)-1] != "target" {
		return nil, fmt.Errorf("diabetes: last column is %q, want \"target\"", header[len(header)-1])
	}
	columns := header[:len(header)-1]

	rows := make([][]float32, 0, len(records)-1)
	targets := make([]float32, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("diabetes: row %d has %d fields, want %d", i+1, len(record), len(header))
		}
		row := make([]float32, len(columns))
		for j := range columns {
			v, err := strconv.ParseFloat(record[j], 32)
			if err != nil {
				return nil, fmt.Errorf("diabetes: row %d column %q: %w", i+1, columns[j], err)
			}
			row[j] = float32(v)
		}
		target, err := strconv.ParseFloat(record[len(record)-1], 32)
		if err != nil {
			return nil, fmt.Errorf("diabetes: row %d target: %w", i+1, err)
		}
		rows = append(rows, row)
		targets = append(targets, float32(target))
	}

	return data.NewTabularDataset(columns, rows, targets)
}
