package data_test

import (
	"testing"

	"github.com/ember-ml/ember/data"
)

func sampleDataset(t *testing.T, n int) *data.TabularDataset {
	t.Helper()
	rows := make([][]float32, n)
	targets := make([]float32, n)
	for i := range rows {
		rows[i] = []float32{float32(i), float32(i) * 2}
		targets[i] = float32(i) * 10
	}
	ds, err := data.NewTabularDataset([]string{"a", "b"}, rows, targets)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestNewTabularDataset(t *testing.T) {
	ds := sampleDataset(t, 5)
	if ds.Len() != 5 {
		t.Errorf("Len = %d, want 5", ds.Len())
	}
	if ds.NumFeatures() != 2 {
		t.Errorf("NumFeatures = %d, want 2", ds.NumFeatures())
	}
	if ds.Target(3) != 30 {
		t.Errorf("Target(3) = %v, want 30", ds.Target(3))
	}
}

func TestNewTabularDatasetValidation(t *testing.T) {
	if _, err := data.NewTabularDataset(nil, nil, nil); err == nil {
		t.Error("empty columns accepted")
	}
	if _, err := data.NewTabularDataset([]string{"a"}, [][]float32{{1}}, []float32{1, 2}); err == nil {
		t.Error("row/target count mismatch accepted")
	}
	if _, err := data.NewTabularDataset([]string{"a", "b"}, [][]float32{{1}}, []float32{1}); err == nil {
		t.Error("short row accepted")
	}
}

func TestSelect(t *testing.T) {
	ds := sampleDataset(t, 5)

	sub, err := ds.Select([]int{4, 0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Len() != 3 {
		t.Fatalf("Len = %d, want 3", sub.Len())
	}
	if sub.Target(0) != 40 || sub.Target(1) != 0 || sub.Target(2) != 20 {
		t.Errorf("targets = [%v %v %v], want [40 0 20]", sub.Target(0), sub.Target(1), sub.Target(2))
	}

	if _, err := ds.Select([]int{5}); err == nil {
		t.Error("out of range index accepted")
	}
}
