// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/ember-ml/ember/tensor"
)

// DefaultBatchSize is used when a loader or data module is configured
// with a batch size of zero.
const DefaultBatchSize = 64

// Batch is one collated mini-batch: features of shape [size, features]
// and targets of shape [size, 1].
type Batch[B tensor.Backend] struct {
	Features *tensor.Tensor[float32, B]
	Targets  *tensor.Tensor[float32, B]
	Size     int
}

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	BatchSize  int   // rows per batch, default DefaultBatchSize
	NumWorkers int   // parallel collation workers, 0 collates serially
	Shuffle    bool  // shuffle row order before batching
	Seed       int64 // shuffle seed
}

// Loader collates a TabularDataset into tensor batches.
//
// With NumWorkers > 0, batches are collated concurrently; the returned
// order is the same as serial collation regardless of worker count.
type Loader[B tensor.Backend] struct {
	dataset *TabularDataset
	backend B
	cfg     LoaderConfig
}

// NewLoader creates a loader over the given dataset.
func NewLoader[B tensor.Backend](ds *TabularDataset, backend B, cfg LoaderConfig) (*Loader[B], error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("data: loader over empty dataset")
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.BatchSize < 0 {
		return nil, fmt.Errorf("data: batch size must be positive, got %d", cfg.BatchSize)
	}
	if cfg.NumWorkers < 0 {
		return nil, fmt.Errorf("data: num workers must be >= 0, got %d", cfg.NumWorkers)
	}
	return &Loader[B]{dataset: ds, backend: backend, cfg: cfg}, nil
}

// BatchSize returns the configured batch size.
func (l *Loader[B]) BatchSize() int {
	return l.cfg.BatchSize
}

// NumBatches returns the number of batches per epoch. The last batch
// may be smaller than the batch size.
func (l *Loader[B]) NumBatches() int {
	return (l.dataset.Len() + l.cfg.BatchSize - 1) / l.cfg.BatchSize
}

// Batches collates the dataset into batches for one epoch.
func (l *Loader[B]) Batches() ([]*Batch[B], error) {
	n := l.dataset.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if l.cfg.Shuffle {
		rng := rand.New(rand.NewSource(l.cfg.Seed))
		rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	numBatches := l.NumBatches()
	batches := make([]*Batch[B], numBatches)
	errs := make([]error, numBatches)

	collate := func(b int) {
		start := b * l.cfg.BatchSize
		end := min(start+l.cfg.BatchSize, n)
		batches[b], errs[b] = l.collate(order[start:end])
	}

	if l.cfg.NumWorkers == 0 {
		for b := 0; b < numBatches; b++ {
			collate(b)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < l.cfg.NumWorkers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for b := range jobs {
					collate(b)
				}
			}()
		}
		for b := 0; b < numBatches; b++ {
			jobs <- b
		}
		close(jobs)
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return batches, nil
}

// collate builds one batch from the given dataset indices.
func (l *Loader[B]) collate(indices []int) (*Batch[B], error) {
	rows := make([][]float32, len(indices))
	targets := make([]float32, len(indices))
	for i, idx := range indices {
		rows[i] = l.dataset.Row(idx)
		targets[i] = l.dataset.Target(idx)
	}

	features, err := tensor.FromRows(rows, l.backend)
	if err != nil {
		return nil, fmt.Errorf("data: collating features: %w", err)
	}
	targetTensor, err := tensor.FromSlice(targets, tensor.Shape{len(indices), 1}, l.backend)
	if err != nil {
		return nil, fmt.Errorf("data: collating targets: %w", err)
	}

	return &Batch[B]{
		Features: features,
		Targets:  targetTensor,
		Size:     len(indices),
	}, nil
}
