// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/data"
	"github.com/ember-ml/ember/datasets/diabetes"
	"github.com/ember-ml/ember/task"
	"github.com/ember-ml/ember/trainer"
)

var trainFlags struct {
	epochs       int
	batchSize    int
	numWorkers   int
	lr           float32
	seed         int64
	testFraction float64
	predictions  int
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a linear regression on the bundled diabetes dataset",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&trainFlags.epochs, "epochs", 50, "training epochs")
	trainCmd.Flags().IntVar(&trainFlags.batchSize, "batch-size", 64, "rows per batch")
	trainCmd.Flags().IntVar(&trainFlags.numWorkers, "workers", 0, "parallel batch collation workers")
	trainCmd.Flags().Float32Var(&trainFlags.lr, "lr", 0.5, "learning rate")
	trainCmd.Flags().Int64Var(&trainFlags.seed, "seed", 42, "random seed for split, shuffle, and init")
	trainCmd.Flags().Float64Var(&trainFlags.testFraction, "test-fraction", 0.2, "share of rows held out for testing")
	trainCmd.Flags().IntVar(&trainFlags.predictions, "predictions", 5, "sample predictions to print")
}

func runTrain(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dataset, err := diabetes.Load()
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		slog.Int("rows", dataset.Len()),
		slog.Int("features", dataset.NumFeatures()))

	train, test, err := data.TrainTestSplit(dataset, trainFlags.testFraction, trainFlags.seed)
	if err != nil {
		return err
	}

	backend := autodiff.New(cpu.New())
	dm, err := data.NewDataModule(train, nil, test, backend,
		data.WithBatchSize(trainFlags.batchSize),
		data.WithNumWorkers(trainFlags.numWorkers),
		data.WithSeed(trainFlags.seed),
	)
	if err != nil {
		return err
	}

	tk, err := task.NewRegression(dm.NumInputs(), backend, task.RegressionConfig[*autodiff.Backend[*cpu.Backend]]{
		LR:   trainFlags.lr,
		Seed: trainFlags.seed,
	})
	if err != nil {
		return err
	}

	tr := trainer.New(backend,
		trainer.WithMaxEpochs(trainFlags.epochs),
		trainer.WithLogger(logger),
	)
	if err := tr.Fit(tk, dm); err != nil {
		return err
	}

	testLoss, testMetrics, err := tr.Test(tk, dm)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"test_loss", fmt.Sprintf("%.4f", testLoss)})
	for _, m := range tk.Metrics() {
		table.Append([]string{m.Name(), fmt.Sprintf("%.4f", testMetrics[m.Name()])})
	}
	table.Render()

	if trainFlags.predictions > 0 {
		n := min(trainFlags.predictions, test.Len())
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		sample, err := test.Select(indices)
		if err != nil {
			return err
		}
		loader, err := data.NewLoader(sample, backend, data.LoaderConfig{BatchSize: n})
		if err != nil {
			return err
		}
		batches, err := loader.Batches()
		if err != nil {
			return err
		}

		fmt.Println()
		for i, s := range tk.Predict(batches[0].Features) {
			fmt.Printf("%s (actual: %.0f)\n", s, sample.Target(i))
		}
	}
	return nil
}
