package data_test

import (
	"testing"

	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/data"
	"github.com/ember-ml/ember/tensor"
)

func TestFormatPipelineDefault(t *testing.T) {
	p := data.NewFormatPipeline("")

	out := p.AfterUncollate([]float32{91.1999, 14.5})
	want := []string{"disease progression: 91.20", "disease progression: 14.50"}
	if len(out) != len(want) {
		t.Fatalf("got %d strings, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestFormatPipelineCustom(t *testing.T) {
	p := data.NewFormatPipeline("score=%.1f")

	out := p.AfterUncollate([]float32{3.14})
	if out[0] != "score=3.1" {
		t.Errorf("out = %q, want %q", out[0], "score=3.1")
	}
}

func TestFormatPipelineEmptyInput(t *testing.T) {
	p := data.NewFormatPipeline("")
	if out := p.AfterUncollate(nil); len(out) != 0 {
		t.Errorf("empty input produced %d strings", len(out))
	}
}

func TestUncollate(t *testing.T) {
	b := cpu.New()
	tr, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, b)
	if err != nil {
		t.Fatal(err)
	}

	values := data.Uncollate(tr)
	if len(values) != 3 || values[0] != 1 || values[2] != 3 {
		t.Errorf("Uncollate = %v, want [1 2 3]", values)
	}

	// The returned slice is a copy, not a view.
	values[0] = 99
	if tr.At(0, 0) != 1 {
		t.Error("Uncollate returned a live view")
	}
}
