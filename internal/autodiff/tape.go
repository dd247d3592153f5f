package autodiff

import (
	"fmt"
	"sync"

	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/tensor"
)

// GradientTape records operations for reverse-mode differentiation.
//
// While recording, every operation performed through an AutodiffBackend
// is appended to the tape. Backward replays the tape in reverse,
// accumulating gradients for every tensor that participated.
type GradientTape struct {
	mu        sync.Mutex
	recording bool
	ops       []ops.Operation
	pins      []func() // releases for pinned operand buffers
}

// NewGradientTape creates an empty, non-recording tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{}
}

// StartRecording begins recording operations.
func (t *GradientTape) StartRecording() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recording = true
}

// StopRecording stops recording. Already recorded operations are kept.
func (t *GradientTape) StopRecording() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recording = false
}

// IsRecording reports whether operations are currently being recorded.
func (t *GradientTape) IsRecording() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recording
}

// Record appends an operation to the tape.
//
// Operand buffers are pinned (marked non-unique) until Clear, so later
// inplace optimizations cannot corrupt values the backward pass needs.
func (t *GradientTape) Record(op ops.Operation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.recording {
		return
	}
	for _, in := range op.Inputs() {
		t.pins = append(t.pins, in.ForceNonUnique())
	}
	t.pins = append(t.pins, op.Output().ForceNonUnique())
	t.ops = append(t.ops, op)
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ops)
}

// Clear drops all recorded operations and releases pinned buffers.
// Call after each optimizer step so the next iteration starts fresh.
func (t *GradientTape) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, release := range t.pins {
		release()
	}
	t.ops = nil
	t.pins = nil
}

// Backward computes gradients of root with respect to every recorded
// tensor, walking the tape in reverse. outputGrad seeds the gradient at
// root (typically ones shaped like root).
//
// Returns a map from tensor identity to its accumulated gradient.
// Recording is suspended for the duration of the pass.
func (t *GradientTape) Backward(root *tensor.RawTensor, outputGrad *tensor.RawTensor, backend tensor.Backend) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	// Snapshot under the lock, then walk unlocked: the backward pass may
	// run through an AutodiffBackend, whose methods consult this tape.
	t.mu.Lock()
	if len(t.ops) == 0 {
		t.mu.Unlock()
		return nil, fmt.Errorf("autodiff: backward on empty tape")
	}
	if !root.Shape().Equal(outputGrad.Shape()) {
		t.mu.Unlock()
		return nil, fmt.Errorf("autodiff: output gradient shape %v does not match root shape %v",
			outputGrad.Shape(), root.Shape())
	}
	recorded := make([]ops.Operation, len(t.ops))
	copy(recorded, t.ops)
	wasRecording := t.recording
	t.recording = false
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.recording = wasRecording
		t.mu.Unlock()
	}()

	grads := map[*tensor.RawTensor]*tensor.RawTensor{root: outputGrad}

	for i := len(recorded) - 1; i >= 0; i-- {
		op := recorded[i]
		grad, ok := grads[op.Output()]
		if !ok {
			continue // operation did not contribute to root
		}

		// Pin the output gradient so op.Backward cannot mutate it
		// through an inplace fast path.
		release := grad.ForceNonUnique()
		inputGrads := op.Backward(grad, backend)
		release()

		inputs := op.Inputs()
		if len(inputGrads) != len(inputs) {
			return nil, fmt.Errorf("autodiff: operation %T returned %d gradients for %d inputs",
				op, len(inputGrads), len(inputs))
		}

		for j, in := range inputs {
			g := inputGrads[j]
			if existing, ok := grads[in]; ok {
				// Accumulate out of place: both operands may alias
				// gradients still referenced in the map.
				rel := existing.ForceNonUnique()
				grads[in] = backend.Add(existing, g)
				rel()
			} else {
				grads[in] = g
			}
		}
	}

	return grads, nil
}
