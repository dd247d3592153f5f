package data_test

import (
	"testing"

	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/data"
	"github.com/ember-ml/ember/tensor"
)

func TestLoaderBatchShapes(t *testing.T) {
	ds := sampleDataset(t, 10)
	loader, err := data.NewLoader(ds, cpu.New(), data.LoaderConfig{BatchSize: 4})
	if err != nil {
		t.Fatal(err)
	}

	if loader.NumBatches() != 3 {
		t.Fatalf("NumBatches = %d, want 3", loader.NumBatches())
	}

	batches, err := loader.Batches()
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}

	for i, b := range batches[:2] {
		if b.Size != 4 {
			t.Errorf("batch %d size = %d, want 4", i, b.Size)
		}
		if !b.Features.Shape().Equal(tensor.Shape{4, 2}) {
			t.Errorf("batch %d features shape = %v, want [4 2]", i, b.Features.Shape())
		}
		if !b.Targets.Shape().Equal(tensor.Shape{4, 1}) {
			t.Errorf("batch %d targets shape = %v, want [4 1]", i, b.Targets.Shape())
		}
	}

	// Last batch picks up the remainder.
	if batches[2].Size != 2 {
		t.Errorf("last batch size = %d, want 2", batches[2].Size)
	}
}

func TestLoaderDefaultBatchSize(t *testing.T) {
	ds := sampleDataset(t, 10)
	loader, err := data.NewLoader(ds, cpu.New(), data.LoaderConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if loader.BatchSize() != data.DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", loader.BatchSize(), data.DefaultBatchSize)
	}
}

func TestLoaderPreservesOrder(t *testing.T) {
	ds := sampleDataset(t, 7)
	loader, err := data.NewLoader(ds, cpu.New(), data.LoaderConfig{BatchSize: 3})
	if err != nil {
		t.Fatal(err)
	}

	batches, err := loader.Batches()
	if err != nil {
		t.Fatal(err)
	}

	var targets []float32
	for _, b := range batches {
		targets = append(targets, b.Targets.Data()...)
	}
	for i, v := range targets {
		if v != float32(i)*10 {
			t.Fatalf("unshuffled targets out of order: %v", targets)
		}
	}
}

func TestLoaderShuffleDeterministic(t *testing.T) {
	ds := sampleDataset(t, 20)
	cfg := data.LoaderConfig{BatchSize: 5, Shuffle: true, Seed: 9}

	collect := func() []float32 {
		loader, err := data.NewLoader(ds, cpu.New(), cfg)
		if err != nil {
			t.Fatal(err)
		}
		batches, err := loader.Batches()
		if err != nil {
			t.Fatal(err)
		}
		var targets []float32
		for _, b := range batches {
			targets = append(targets, b.Targets.Data()...)
		}
		return targets
	}

	a, b := collect(), collect()
	shuffled := false
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different shuffles")
		}
		if a[i] != float32(i)*10 {
			shuffled = true
		}
	}
	if !shuffled {
		t.Error("shuffle left rows in original order")
	}
}

func TestLoaderWorkersMatchSerial(t *testing.T) {
	ds := sampleDataset(t, 50)

	serial, err := data.NewLoader(ds, cpu.New(), data.LoaderConfig{BatchSize: 7})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := data.NewLoader(ds, cpu.New(), data.LoaderConfig{BatchSize: 7, NumWorkers: 4})
	if err != nil {
		t.Fatal(err)
	}

	sb, err := serial.Batches()
	if err != nil {
		t.Fatal(err)
	}
	pb, err := parallel.Batches()
	if err != nil {
		t.Fatal(err)
	}

	if len(sb) != len(pb) {
		t.Fatalf("batch counts differ: %d vs %d", len(sb), len(pb))
	}
	for i := range sb {
		sf, pf := sb[i].Features.Data(), pb[i].Features.Data()
		for j := range sf {
			if sf[j] != pf[j] {
				t.Fatalf("batch %d differs between serial and parallel collation", i)
			}
		}
	}
}

func TestLoaderValidation(t *testing.T) {
	ds := sampleDataset(t, 5)

	if _, err := data.NewLoader(ds, cpu.New(), data.LoaderConfig{BatchSize: -1}); err == nil {
		t.Error("negative batch size accepted")
	}
	if _, err := data.NewLoader(ds, cpu.New(), data.LoaderConfig{NumWorkers: -2}); err == nil {
		t.Error("negative worker count accepted")
	}

	empty, err := data.NewTabularDataset([]string{"a"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := data.NewLoader(empty, cpu.New(), data.LoaderConfig{}); err == nil {
		t.Error("empty dataset accepted")
	}
}
