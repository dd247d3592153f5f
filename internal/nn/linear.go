package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/tensor"
)

// Linear is a fully connected layer: y = x @ W^T + bias.
//
// The weight has shape [outFeatures, inFeatures] and the bias
// [outFeatures]. The bias is reshaped to [1, outFeatures] in Forward so
// it broadcasts over the batch dimension.
type Linear[B tensor.Backend] struct {
	weight      *Parameter[B]
	bias        *Parameter[B]
	inFeatures  int
	outFeatures int
}

// NewLinear creates a linear layer with Xavier-initialized weights and
// zero bias. The rng makes initialization reproducible.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, b B) *Linear[B] {
	weight := XavierUniform(tensor.Shape{outFeatures, inFeatures}, inFeatures, outFeatures, rng, b)
	bias := tensor.Zeros[float32, B](tensor.Shape{outFeatures}, b)

	return &Linear[B]{
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
	}
}

// Forward computes y = x @ W^T + bias for a [batch, inFeatures] input.
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("nn: linear: expected 2D input [batch, features], got %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("nn: linear: input has %d features, layer expects %d", shape[1], l.inFeatures))
	}

	out := input.MatMul(l.weight.Tensor().T())
	biasRow := l.bias.Tensor().Reshape(1, l.outFeatures)
	return out.Add(biasRow)
}

// Parameters returns the weight and bias.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] { return l.weight }

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] { return l.bias }

// InFeatures returns the expected input width.
func (l *Linear[B]) InFeatures() int { return l.inFeatures }

// OutFeatures returns the output width.
func (l *Linear[B]) OutFeatures() int { return l.outFeatures }
