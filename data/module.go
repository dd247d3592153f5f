// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"

	"github.com/ember-ml/ember/tensor"
)

// DataModule bundles the train, validation, and test splits of one
// dataset together with the loading configuration. It answers the
// questions a task needs at construction time, like the number of input
// features, and builds loaders for the trainer.
type DataModule[B tensor.Backend] struct {
	train *TabularDataset
	val   *TabularDataset
	test  *TabularDataset

	backend    B
	batchSize  int
	numWorkers int
	seed       int64
	format     string
	numInputs  int
}

// ModuleOption configures a DataModule.
type ModuleOption func(*moduleOptions)

type moduleOptions struct {
	batchSize  int
	numWorkers int
	seed       int64
	format     string
}

// WithBatchSize sets the rows per batch (default DefaultBatchSize).
func WithBatchSize(n int) ModuleOption {
	return func(o *moduleOptions) { o.batchSize = n }
}

// WithNumWorkers sets the number of parallel collation workers.
func WithNumWorkers(n int) ModuleOption {
	return func(o *moduleOptions) { o.numWorkers = n }
}

// WithSeed sets the shuffle seed for the training loader.
func WithSeed(seed int64) ModuleOption {
	return func(o *moduleOptions) { o.seed = seed }
}

// WithFormat sets the output format of the default pipeline.
func WithFormat(format string) ModuleOption {
	return func(o *moduleOptions) { o.format = format }
}

// NewDataModule creates a data module from dataset splits.
//
// train and test are required; val may be nil, in which case validation
// runs against the test split. All splits must agree on the number of
// feature columns.
func NewDataModule[B tensor.Backend](train, val, test *TabularDataset, backend B, opts ...ModuleOption) (*DataModule[B], error) {
	if train == nil || train.Len() == 0 {
		return nil, fmt.Errorf("data: module needs a non-empty train split")
	}
	if test == nil || test.Len() == 0 {
		return nil, fmt.Errorf("data: module needs a non-empty test split")
	}
	if val == nil {
		val = test
	}

	numInputs := train.NumFeatures()
	if val.NumFeatures() != numInputs {
		return nil, fmt.Errorf("data: val split has %d features, train has %d",
			val.NumFeatures(), numInputs)
	}
	if test.NumFeatures() != numInputs {
		return nil, fmt.Errorf("data: test split has %d features, train has %d",
			test.NumFeatures(), numInputs)
	}

	o := moduleOptions{batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.batchSize <= 0 {
		return nil, fmt.Errorf("data: batch size must be positive, got %d", o.batchSize)
	}
	if o.numWorkers < 0 {
		return nil, fmt.Errorf("data: num workers must be >= 0, got %d", o.numWorkers)
	}

	return &DataModule[B]{
		train:      train,
		val:        val,
		test:       test,
		backend:    backend,
		batchSize:  o.batchSize,
		numWorkers: o.numWorkers,
		seed:       o.seed,
		format:     o.format,
		numInputs:  numInputs,
	}, nil
}

// NumInputs returns the number of feature columns, derived from the
// train split. Tasks use it to size their input layer.
func (m *DataModule[B]) NumInputs() int {
	return m.numInputs
}

// BatchSize returns the configured batch size.
func (m *DataModule[B]) BatchSize() int {
	return m.batchSize
}

// NumWorkers returns the configured worker count.
func (m *DataModule[B]) NumWorkers() int {
	return m.numWorkers
}

// Train returns the training split.
func (m *DataModule[B]) Train() *TabularDataset { return m.train }

// Val returns the validation split (the test split when none was given).
func (m *DataModule[B]) Val() *TabularDataset { return m.val }

// Test returns the test split.
func (m *DataModule[B]) Test() *TabularDataset { return m.test }

// TrainLoader builds a shuffled loader over the training split.
// epoch varies the shuffle order while keeping it reproducible.
func (m *DataModule[B]) TrainLoader(epoch int) (*Loader[B], error) {
	return NewLoader(m.train, m.backend, LoaderConfig{
		BatchSize:  m.batchSize,
		NumWorkers: m.numWorkers,
		Shuffle:    true,
		Seed:       m.seed + int64(epoch),
	})
}

// ValLoader builds an unshuffled loader over the validation split.
func (m *DataModule[B]) ValLoader() (*Loader[B], error) {
	return NewLoader(m.val, m.backend, LoaderConfig{
		BatchSize:  m.batchSize,
		NumWorkers: m.numWorkers,
	})
}

// TestLoader builds an unshuffled loader over the test split.
func (m *DataModule[B]) TestLoader() (*Loader[B], error) {
	return NewLoader(m.test, m.backend, LoaderConfig{
		BatchSize:  m.batchSize,
		NumWorkers: m.numWorkers,
	})
}

// DefaultPipeline returns the output pipeline for this data module.
func (m *DataModule[B]) DefaultPipeline() Pipeline {
	return NewFormatPipeline(m.format)
}
