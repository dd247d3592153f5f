package data_test

import (
	"strings"
	"testing"

	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/data"
)

func TestDataModuleNumInputs(t *testing.T) {
	train, test := sampleDataset(t, 8), sampleDataset(t, 4)

	dm, err := data.NewDataModule(train, nil, test, cpu.New())
	if err != nil {
		t.Fatal(err)
	}
	if dm.NumInputs() != 2 {
		t.Errorf("NumInputs = %d, want 2", dm.NumInputs())
	}
	if dm.BatchSize() != data.DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", dm.BatchSize(), data.DefaultBatchSize)
	}
}

func TestDataModuleValFallsBackToTest(t *testing.T) {
	train, test := sampleDataset(t, 8), sampleDataset(t, 4)

	dm, err := data.NewDataModule(train, nil, test, cpu.New())
	if err != nil {
		t.Fatal(err)
	}
	if dm.Val() != dm.Test() {
		t.Error("nil val split should fall back to the test split")
	}
}

func TestDataModuleSeparateVal(t *testing.T) {
	train, val, test := sampleDataset(t, 8), sampleDataset(t, 3), sampleDataset(t, 4)

	dm, err := data.NewDataModule(train, val, test, cpu.New())
	if err != nil {
		t.Fatal(err)
	}
	if dm.Val() == dm.Test() {
		t.Error("explicit val split was replaced")
	}
	if dm.Val().Len() != 3 {
		t.Errorf("val size = %d, want 3", dm.Val().Len())
	}
}

func TestDataModuleFeatureMismatch(t *testing.T) {
	train := sampleDataset(t, 8)
	narrow, err := data.NewTabularDataset([]string{"a"}, [][]float32{{1}}, []float32{1})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := data.NewDataModule(train, nil, narrow, cpu.New()); err == nil {
		t.Error("feature count mismatch accepted")
	}

	// With both splits mismatched the val split is always the one reported.
	_, err = data.NewDataModule(train, narrow, narrow, cpu.New())
	if err == nil {
		t.Fatal("feature count mismatch accepted")
	}
	if !strings.Contains(err.Error(), "val split") {
		t.Errorf("mismatch error = %q, want val split reported first", err)
	}
}

func TestDataModuleValidation(t *testing.T) {
	train, test := sampleDataset(t, 8), sampleDataset(t, 4)

	if _, err := data.NewDataModule(nil, nil, test, cpu.New()); err == nil {
		t.Error("nil train split accepted")
	}
	if _, err := data.NewDataModule(train, nil, nil, cpu.New()); err == nil {
		t.Error("nil test split accepted")
	}
	if _, err := data.NewDataModule(train, nil, test, cpu.New(), data.WithBatchSize(-1)); err == nil {
		t.Error("negative batch size accepted")
	}
	if _, err := data.NewDataModule(train, nil, test, cpu.New(), data.WithNumWorkers(-1)); err == nil {
		t.Error("negative worker count accepted")
	}
}

func TestDataModuleLoaders(t *testing.T) {
	train, test := sampleDataset(t, 10), sampleDataset(t, 4)

	dm, err := data.NewDataModule(train, nil, test, cpu.New(),
		data.WithBatchSize(4), data.WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}

	tl, err := dm.TrainLoader(0)
	if err != nil {
		t.Fatal(err)
	}
	if tl.NumBatches() != 3 {
		t.Errorf("train NumBatches = %d, want 3", tl.NumBatches())
	}

	// Different epochs shuffle differently, same epoch is stable.
	first := func(loader *data.Loader[*cpu.Backend]) float32 {
		batches, err := loader.Batches()
		if err != nil {
			t.Fatal(err)
		}
		return batches[0].Targets.Data()[0]
	}
	tl0, err := dm.TrainLoader(0)
	if err != nil {
		t.Fatal(err)
	}
	if first(tl) != first(tl0) {
		t.Error("same epoch produced different batch order")
	}

	vl, err := dm.ValLoader()
	if err != nil {
		t.Fatal(err)
	}
	if vl.NumBatches() != 1 {
		t.Errorf("val NumBatches = %d, want 1", vl.NumBatches())
	}
}

func TestDataModuleDefaultPipeline(t *testing.T) {
	train, test := sampleDataset(t, 8), sampleDataset(t, 4)

	dm, err := data.NewDataModule(train, nil, test, cpu.New())
	if err != nil {
		t.Fatal(err)
	}
	out := dm.DefaultPipeline().AfterUncollate([]float32{42})
	if out[0] != "disease progression: 42.00" {
		t.Errorf("default pipeline output = %q", out[0])
	}

	dm2, err := data.NewDataModule(train, nil, test, cpu.New(), data.WithFormat("y=%.0f"))
	if err != nil {
		t.Fatal(err)
	}
	out = dm2.DefaultPipeline().AfterUncollate([]float32{42})
	if out[0] != "y=42" {
		t.Errorf("custom pipeline output = %q", out[0])
	}
}
