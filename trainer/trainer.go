// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package trainer drives tasks through their optimization loop:
// per-batch forward, backward, and optimizer steps, with validation
// after every epoch.
package trainer

import (
	"fmt"
	"log/slog"

	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/data"
	"github.com/ember-ml/ember/task"
)

// Trainer runs the fit/validate/test loop for a task.
type Trainer[B autodiff.BackwardCapable] struct {
	backend   B
	maxEpochs int
	logger    *slog.Logger
}

// Option configures a Trainer.
type Option func(*options)

type options struct {
	maxEpochs int
	logger    *slog.Logger
}

// WithMaxEpochs sets the number of training epochs (default 10).
func WithMaxEpochs(n int) Option {
	return func(o *options) { o.maxEpochs = n }
}

// WithLogger sets the structured logger (default slog.Default).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a trainer on the given recording backend.
func New[B autodiff.BackwardCapable](backend B, opts ...Option) *Trainer[B] {
	o := options{maxEpochs: 10, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Trainer[B]{
		backend:   backend,
		maxEpochs: o.maxEpochs,
		logger:    o.logger,
	}
}

// MaxEpochs returns the configured epoch count.
func (t *Trainer[B]) MaxEpochs() int {
	return t.maxEpochs
}

// Fit trains the task on the data module's training split, validating
// after every epoch. If the task has no output pipeline, the data
// module's default pipeline is attached before training.
func (t *Trainer[B]) Fit(tk task.Task[B], dm *data.DataModule[B]) error {
	if tk.Pipeline() == nil {
		tk.AttachPipeline(dm.DefaultPipeline())
	}

	tape := t.backend.GetTape()
	tape.StartRecording()
	defer tape.StopRecording()

	opt := tk.Optimizer()

	for epoch := 0; epoch < t.maxEpochs; epoch++ {
		loader, err := dm.TrainLoader(epoch)
		if err != nil {
			return fmt.Errorf("trainer: building train loader: %w", err)
		}
		batches, err := loader.Batches()
		if err != nil {
			return fmt.Errorf("trainer: collating epoch %d: %w", epoch, err)
		}

		totalLoss := 0.0
		totalRows := 0
		for _, batch := range batches {
			opt.ZeroGrad()

			loss, _ := tk.Step(batch)
			totalLoss += float64(loss.Item()) * float64(batch.Size)
			totalRows += batch.Size

			grads, err := autodiff.Backward(loss)
			if err != nil {
				tape.Clear()
				return fmt.Errorf("trainer: backward in epoch %d: %w", epoch, err)
			}
			if err := opt.Step(grads); err != nil {
				tape.Clear()
				return fmt.Errorf("trainer: optimizer step in epoch %d: %w", epoch, err)
			}
			tape.Clear()
		}
		trainLoss := totalLoss / float64(totalRows)

		valLoss, valMetrics, err := t.Validate(tk, dm)
		if err != nil {
			return fmt.Errorf("trainer: validating epoch %d: %w", epoch, err)
		}

		attrs := []any{
			slog.Int("epoch", epoch+1),
			slog.Float64("train_loss", trainLoss),
			slog.Float64("val_loss", valLoss),
		}
		for name, value := range valMetrics {
			attrs = append(attrs, slog.Float64(name, value))
		}
		t.logger.Info("epoch complete", attrs...)
	}
	return nil
}

// Validate evaluates the task on the validation split.
func (t *Trainer[B]) Validate(tk task.Task[B], dm *data.DataModule[B]) (float64, map[string]float64, error) {
	loader, err := dm.ValLoader()
	if err != nil {
		return 0, nil, err
	}
	return t.evaluate(tk, loader)
}

// Test evaluates the task on the test split.
func (t *Trainer[B]) Test(tk task.Task[B], dm *data.DataModule[B]) (float64, map[string]float64, error) {
	loader, err := dm.TestLoader()
	if err != nil {
		return 0, nil, err
	}
	return t.evaluate(tk, loader)
}

// evaluate computes the mean loss and every task metric over a loader.
// Recording is suspended for the duration.
func (t *Trainer[B]) evaluate(tk task.Task[B], loader *data.Loader[B]) (float64, map[string]float64, error) {
	tape := t.backend.GetTape()
	wasRecording := tape.IsRecording()
	if wasRecording {
		tape.StopRecording()
		defer tape.StartRecording()
	}

	batches, err := loader.Batches()
	if err != nil {
		return 0, nil, err
	}

	totalLoss := 0.0
	totalRows := 0
	var predicted, actual []float64
	for _, batch := range batches {
		loss, predictions := tk.Step(batch)
		totalLoss += float64(loss.Item()) * float64(batch.Size)
		totalRows += batch.Size

		for _, v := range data.Uncollate(predictions) {
			predicted = append(predicted, float64(v))
		}
		for _, v := range data.Uncollate(batch.Targets) {
			actual = append(actual, float64(v))
		}
	}

	results := make(map[string]float64, len(tk.Metrics()))
	for _, m := range tk.Metrics() {
		results[m.Name()] = m.Compute(predicted, actual)
	}
	return totalLoss / float64(totalRows), results, nil
}
