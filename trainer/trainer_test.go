package trainer_test

import (
	"io"
	"log/slog"
	"math/rand"
	"regexp"
	"testing"

	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/data"
	"github.com/ember-ml/ember/datasets/diabetes"
	"github.com/ember-ml/ember/nn"
	"github.com/ember-ml/ember/task"
	"github.com/ember-ml/ember/tensor"
	"github.com/ember-ml/ember/trainer"
)

type testBackend = *autodiff.Backend[*cpu.Backend]

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// linearDataset builds rows with a known linear relationship
// y = 2a + 3b + 1 plus small noise.
func linearDataset(t *testing.T, n int, seed int64) *data.TabularDataset {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float32, n)
	targets := make([]float32, n)
	for i := range rows {
		a := rng.Float32()*2 - 1
		b := rng.Float32()*2 - 1
		rows[i] = []float32{a, b}
		targets[i] = 2*a + 3*b + 1 + (rng.Float32()-0.5)*0.01
	}
	ds, err := data.NewTabularDataset([]string{"a", "b"}, rows, targets)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func setup(t *testing.T, seed int64, epochs int) (testBackend, *task.Regression[testBackend], *data.DataModule[testBackend], *trainer.Trainer[testBackend]) {
	t.Helper()
	ds := linearDataset(t, 200, seed)
	train, test, err := data.TrainTestSplit(ds, 0.2, seed)
	if err != nil {
		t.Fatal(err)
	}

	backend := autodiff.New(cpu.New())
	dm, err := data.NewDataModule(train, nil, test, backend,
		data.WithBatchSize(32), data.WithSeed(seed))
	if err != nil {
		t.Fatal(err)
	}

	tk, err := task.NewRegression(dm.NumInputs(), backend, task.RegressionConfig[testBackend]{
		LR:   0.1,
		Seed: seed,
	})
	if err != nil {
		t.Fatal(err)
	}

	tr := trainer.New(backend,
		trainer.WithMaxEpochs(epochs),
		trainer.WithLogger(quietLogger()),
	)
	return backend, tk, dm, tr
}

func TestFitReducesLoss(t *testing.T) {
	_, tk, dm, tr := setup(t, 1, 40)

	before, _, err := tr.Validate(tk, dm)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Fit(tk, dm); err != nil {
		t.Fatal(err)
	}
	after, metrics, err := tr.Validate(tk, dm)
	if err != nil {
		t.Fatal(err)
	}

	if after >= before {
		t.Errorf("loss did not decrease: before %v, after %v", before, after)
	}
	// y = 2a + 3b + 1 is exactly representable by the linear model.
	if after > 0.1 {
		t.Errorf("final loss = %v, want < 0.1", after)
	}
	if metrics["r2"] < 0.95 {
		t.Errorf("r2 = %v, want > 0.95", metrics["r2"])
	}
}

func TestFitAttachesDefaultPipeline(t *testing.T) {
	_, tk, dm, tr := setup(t, 2, 1)

	if tk.Pipeline() != nil {
		t.Fatal("task has a pipeline before fit")
	}
	if err := tr.Fit(tk, dm); err != nil {
		t.Fatal(err)
	}
	if tk.Pipeline() == nil {
		t.Error("fit did not attach the data module's default pipeline")
	}
}

func TestFitClearsTape(t *testing.T) {
	backend, tk, dm, tr := setup(t, 3, 2)

	if err := tr.Fit(tk, dm); err != nil {
		t.Fatal(err)
	}
	if n := backend.GetTape().NumOps(); n != 0 {
		t.Errorf("tape holds %d ops after fit", n)
	}
	if backend.GetTape().IsRecording() {
		t.Error("tape still recording after fit")
	}
}

func TestFitDeterministic(t *testing.T) {
	run := func() []float32 {
		_, tk, dm, tr := setup(t, 4, 10)
		if err := tr.Fit(tk, dm); err != nil {
			t.Fatal(err)
		}
		var out []float32
		for _, p := range tk.Parameters() {
			out = append(out, p.Raw().AsFloat32()...)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("parameter %d differs between identical runs: %v vs %v", i, a[i], b[i])
		}
	}
}

// forwardCounter wraps a linear model and counts forward passes.
type forwardCounter struct {
	inner *nn.Linear[testBackend]
	calls int
}

func (m *forwardCounter) Forward(x *tensor.Tensor[float32, testBackend]) *tensor.Tensor[float32, testBackend] {
	m.calls++
	return m.inner.Forward(x)
}

func (m *forwardCounter) Parameters() []*nn.Parameter[testBackend] {
	return m.inner.Parameters()
}

func TestEvaluateForwardsOncePerBatch(t *testing.T) {
	ds := linearDataset(t, 64, 6)
	train, test, err := data.TrainTestSplit(ds, 0.5, 6)
	if err != nil {
		t.Fatal(err)
	}

	backend := autodiff.New(cpu.New())
	dm, err := data.NewDataModule(train, nil, test, backend, data.WithBatchSize(8))
	if err != nil {
		t.Fatal(err)
	}

	model := &forwardCounter{inner: nn.NewLinear(dm.NumInputs(), 1, rand.New(rand.NewSource(6)), backend)}
	tk, err := task.NewRegression(dm.NumInputs(), backend, task.RegressionConfig[testBackend]{Model: model})
	if err != nil {
		t.Fatal(err)
	}

	tr := trainer.New(backend, trainer.WithLogger(quietLogger()))
	if _, _, err := tr.Validate(tk, dm); err != nil {
		t.Fatal(err)
	}

	vl, err := dm.ValLoader()
	if err != nil {
		t.Fatal(err)
	}
	if want := vl.NumBatches(); model.calls != want {
		t.Errorf("model forwarded %d times over %d batches", model.calls, want)
	}
}

func TestFitAndPredictOnDiabetes(t *testing.T) {
	ds, err := diabetes.Load()
	if err != nil {
		t.Fatal(err)
	}
	train, test, err := data.TrainTestSplit(ds, 0.2, 42)
	if err != nil {
		t.Fatal(err)
	}

	backend := autodiff.New(cpu.New())
	dm, err := data.NewDataModule(train, nil, test, backend, data.WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	if dm.NumInputs() != 10 {
		t.Fatalf("NumInputs = %d, want 10", dm.NumInputs())
	}

	tk, err := task.NewRegression(dm.NumInputs(), backend, task.RegressionConfig[testBackend]{
		LR:   0.5,
		Seed: 42,
	})
	if err != nil {
		t.Fatal(err)
	}

	tr := trainer.New(backend,
		trainer.WithMaxEpochs(30),
		trainer.WithLogger(quietLogger()),
	)
	if err := tr.Fit(tk, dm); err != nil {
		t.Fatal(err)
	}

	heldOut, err := dm.Test().Select([]int{0, 1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	loader, err := data.NewLoader(heldOut, backend, data.LoaderConfig{BatchSize: heldOut.Len()})
	if err != nil {
		t.Fatal(err)
	}
	batches, err := loader.Batches()
	if err != nil {
		t.Fatal(err)
	}

	out := tk.Predict(batches[0].Features)
	if len(out) != 5 {
		t.Fatalf("got %d predictions, want 5", len(out))
	}
	pattern := regexp.MustCompile(`^disease progression: -?\d+\.\d{2}$`)
	for _, s := range out {
		if !pattern.MatchString(s) {
			t.Errorf("prediction %q does not match the output template", s)
		}
	}
}

func TestTestMetrics(t *testing.T) {
	_, tk, dm, tr := setup(t, 5, 30)
	if err := tr.Fit(tk, dm); err != nil {
		t.Fatal(err)
	}

	loss, results, err := tr.Test(tk, dm)
	if err != nil {
		t.Fatal(err)
	}
	if loss < 0 {
		t.Errorf("test loss = %v, want >= 0", loss)
	}
	for _, name := range []string{"mae", "rmse", "r2"} {
		if _, ok := results[name]; !ok {
			t.Errorf("missing metric %q", name)
		}
	}
}
