package nn

import (
	"math/rand"

	"github.com/gradix-ml/gradix/internal/ad"
)

// Dense is a fully connected layer: Forward computes W·x + b for a vector
// input x of length In, producing a vector of length Out.
type Dense struct {
	W *ad.Node // Out×In weight matrix
	B *ad.Node // Out bias vector
}

// NewDense creates a dense layer with weights drawn from N(0, std²) and a
// zero bias.
func NewDense(in, out int, std float32, rng *rand.Rand) *Dense {
	return &Dense{
		W: ad.NewMatrix(NormalMat(rng, out, in, std)),
		B: ad.NewVector(make([]float32, out)),
	}
}

// Forward applies the layer to a vector node.
func (d *Dense) Forward(x *ad.Node) *ad.Node {
	return d.W.Mul(x).Add(d.B)
}

// Params returns the layer's trainable nodes.
func (d *Dense) Params() []*ad.Node {
	return []*ad.Node{d.W, d.B}
}
