package data_test

import (
	"testing"

	"github.com/ember-ml/ember/data"
)

func TestTrainTestSplitSizes(t *testing.T) {
	ds := sampleDataset(t, 10)

	train, test, err := data.TrainTestSplit(ds, 0.2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if test.Len() != 2 {
		t.Errorf("test size = %d, want 2", test.Len())
	}
	if train.Len() != 8 {
		t.Errorf("train size = %d, want 8", train.Len())
	}
}

func TestTrainTestSplitDisjoint(t *testing.T) {
	ds := sampleDataset(t, 20)

	train, test, err := data.TrainTestSplit(ds, 0.25, 3)
	if err != nil {
		t.Fatal(err)
	}

	// Targets are unique per row, so they identify rows across splits.
	seen := make(map[float32]bool)
	for i := 0; i < train.Len(); i++ {
		seen[train.Target(i)] = true
	}
	for i := 0; i < test.Len(); i++ {
		if seen[test.Target(i)] {
			t.Fatalf("row with target %v appears in both splits", test.Target(i))
		}
	}
	if train.Len()+test.Len() != ds.Len() {
		t.Errorf("splits cover %d rows, want %d", train.Len()+test.Len(), ds.Len())
	}
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	ds := sampleDataset(t, 30)

	_, test1, err := data.TrainTestSplit(ds, 0.3, 7)
	if err != nil {
		t.Fatal(err)
	}
	_, test2, err := data.TrainTestSplit(ds, 0.3, 7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < test1.Len(); i++ {
		if test1.Target(i) != test2.Target(i) {
			t.Fatal("same seed produced different splits")
		}
	}

	_, test3, err := data.TrainTestSplit(ds, 0.3, 8)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := 0; i < test1.Len(); i++ {
		if test1.Target(i) != test3.Target(i) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical splits")
	}
}

func TestTrainTestSplitValidation(t *testing.T) {
	ds := sampleDataset(t, 10)

	for _, fraction := range []float64{0, 1, -0.5, 1.5} {
		if _, _, err := data.TrainTestSplit(ds, fraction, 0); err == nil {
			t.Errorf("fraction %v accepted", fraction)
		}
	}

	small := sampleDataset(t, 3)
	if _, _, err := data.TrainTestSplit(small, 0.01, 0); err == nil {
		t.Error("empty test split accepted")
	}
}
