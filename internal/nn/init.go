package nn

import (
	"math"
	"math/rand"

	"github.com/ember-ml/ember/internal/tensor"
)

// XavierUniform initializes a tensor with values drawn uniformly from
// [-limit, limit], limit = sqrt(6 / (fanIn + fanOut)). Keeps activation
// variance stable across layers.
func XavierUniform[B tensor.Backend](shape tensor.Shape, fanIn, fanOut int, rng *rand.Rand, b B) *tensor.Tensor[float32, B] {
	limit := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))

	t := tensor.Zeros[float32, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = (rng.Float32()*2 - 1) * limit
	}
	return t
}
