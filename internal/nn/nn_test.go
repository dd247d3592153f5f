package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/tensor"
)

func TestLinearForwardShape(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(0))
	layer := nn.NewLinear(10, 1, rng, b)

	input := tensor.Zeros[float32](tensor.Shape{8, 10}, b)
	out := layer.Forward(input)
	if !out.Shape().Equal(tensor.Shape{8, 1}) {
		t.Fatalf("output shape = %v, want [8 1]", out.Shape())
	}
}

func TestLinearKnownValues(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(0))
	layer := nn.NewLinear(2, 1, rng, b)

	// Overwrite the initialized weights with known values.
	w := layer.Weight().Tensor().Data()
	w[0], w[1] = 2, 3
	layer.Bias().Tensor().Data()[0] = 1

	input, err := tensor.FromSlice([]float32{1, 1, 2, 0}, tensor.Shape{2, 2}, b)
	if err != nil {
		t.Fatal(err)
	}
	out := layer.Forward(input)

	// row 0: 2*1 + 3*1 + 1 = 6; row 1: 2*2 + 3*0 + 1 = 5
	if out.At(0, 0) != 6 || out.At(1, 0) != 5 {
		t.Errorf("forward = [%v %v], want [6 5]", out.At(0, 0), out.At(1, 0))
	}
}

func TestLinearRejectsBadInput(t *testing.T) {
	b := cpu.New()
	layer := nn.NewLinear(3, 1, rand.New(rand.NewSource(0)), b)

	defer func() {
		if recover() == nil {
			t.Error("wrong feature count did not panic")
		}
	}()
	layer.Forward(tensor.Zeros[float32](tensor.Shape{4, 2}, b))
}

func TestLinearParameters(t *testing.T) {
	b := cpu.New()
	layer := nn.NewLinear(4, 2, rand.New(rand.NewSource(0)), b)

	params := layer.Parameters()
	if len(params) != 2 {
		t.Fatalf("got %d parameters, want 2", len(params))
	}
	if params[0].Name() != "weight" || params[1].Name() != "bias" {
		t.Errorf("parameter names = %q, %q", params[0].Name(), params[1].Name())
	}
	if !params[0].Raw().Shape().Equal(tensor.Shape{2, 4}) {
		t.Errorf("weight shape = %v, want [2 4]", params[0].Raw().Shape())
	}
	if !params[1].Raw().Shape().Equal(tensor.Shape{2}) {
		t.Errorf("bias shape = %v, want [2]", params[1].Raw().Shape())
	}
}

func TestXavierUniformBounds(t *testing.T) {
	b := cpu.New()
	fanIn, fanOut := 10, 1
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))

	w := nn.XavierUniform(tensor.Shape{fanOut, fanIn}, fanIn, fanOut, rand.New(rand.NewSource(7)), b)
	for _, v := range w.Data() {
		if float64(v) < -limit || float64(v) > limit {
			t.Fatalf("weight %v outside [-%v, %v]", v, limit, limit)
		}
	}
}

func TestXavierDeterminism(t *testing.T) {
	b := cpu.New()
	a := nn.NewLinear(5, 3, rand.New(rand.NewSource(11)), b)
	c := nn.NewLinear(5, 3, rand.New(rand.NewSource(11)), b)

	aw, cw := a.Weight().Tensor().Data(), c.Weight().Tensor().Data()
	for i := range aw {
		if aw[i] != cw[i] {
			t.Fatal("same seed produced different weights")
		}
	}
}

func TestSequential(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(0))
	model := nn.NewSequential[*cpu.CPUBackend](
		nn.NewLinear(4, 8, rng, b),
		nn.NewReLU[*cpu.CPUBackend](),
		nn.NewLinear(8, 1, rng, b),
	)

	out := model.Forward(tensor.Zeros[float32](tensor.Shape{2, 4}, b))
	if !out.Shape().Equal(tensor.Shape{2, 1}) {
		t.Fatalf("output shape = %v, want [2 1]", out.Shape())
	}
	if len(model.Parameters()) != 4 {
		t.Errorf("got %d parameters, want 4", len(model.Parameters()))
	}
}

func TestMSELoss(t *testing.T) {
	b := cpu.New()
	loss := nn.NewMSELoss[*cpu.CPUBackend]()

	p, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, b)
	if err != nil {
		t.Fatal(err)
	}
	target, err := tensor.FromSlice([]float32{2, 2, 5}, tensor.Shape{3, 1}, b)
	if err != nil {
		t.Fatal(err)
	}

	out := loss.Compute(p, target)
	if len(out.Shape()) != 0 {
		t.Fatalf("loss shape = %v, want scalar", out.Shape())
	}
	// ((1)^2 + 0 + (2)^2) / 3
	want := float32(5.0 / 3.0)
	if math.Abs(float64(out.Item()-want)) > 1e-5 {
		t.Errorf("loss = %v, want %v", out.Item(), want)
	}
}

func TestMSELossShapeMismatch(t *testing.T) {
	b := cpu.New()
	loss := nn.NewMSELoss[*cpu.CPUBackend]()

	p := tensor.Zeros[float32](tensor.Shape{3, 1}, b)
	target := tensor.Zeros[float32](tensor.Shape{4, 1}, b)

	defer func() {
		if recover() == nil {
			t.Error("shape mismatch did not panic")
		}
	}()
	loss.Compute(p, target)
}
