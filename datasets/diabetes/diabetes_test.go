package diabetes_test

import (
	"testing"

	"github.com/ember-ml/ember/datasets/diabetes"
)

func TestLoad(t *testing.T) {
	ds, err := diabetes.Load()
	if err != nil {
		t.Fatal(err)
	}

	if ds.Len() != 442 {
		t.Errorf("Len = %d, want 442", ds.Len())
	}
	if ds.NumFeatures() != 10 {
		t.Errorf("NumFeatures = %d, want 10", ds.NumFeatures())
	}

	want := []string{"age", "sex", "bmi", "bp", "s1", "s2", "s3", "s4", "s5", "s6"}
	cols := ds.Columns()
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("columns = %v, want %v", cols, want)
		}
	}
}

func TestTargetRange(t *testing.T) {
	ds, err := diabetes.Load()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < ds.Len(); i++ {
		y := ds.Target(i)
		if y < 25 || y > 346 {
			t.Fatalf("target %v at row %d outside [25, 346]", y, i)
		}
	}
}

func TestFeaturesStandardized(t *testing.T) {
	ds, err := diabetes.Load()
	if err != nil {
		t.Fatal(err)
	}

	// Each feature column is mean-centered with unit norm, so values
	// stay well inside (-1, 1).
	for i := 0; i < ds.Len(); i++ {
		for j, v := range ds.Row(i) {
			if v < -1 || v > 1 {
				t.Fatalf("feature %d at row %d = %v, outside standardized range", j, i, v)
			}
		}
	}

	for j := 0; j < ds.NumFeatures(); j++ {
		var sum float64
		for i := 0; i < ds.Len(); i++ {
			sum += float64(ds.Row(i)[j])
		}
		mean := sum / float64(ds.Len())
		if mean > 1e-3 || mean < -1e-3 {
			t.Errorf("column %d mean = %v, want ~0", j, mean)
		}
	}
}
