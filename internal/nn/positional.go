package nn

import (
	"math"

	"github.com/gradix-ml/gradix/internal/ad"
	"github.com/gradix-ml/gradix/internal/la"
)

// PositionalEncoding maps a scalar or vector coordinate into a vector of
// sinusoids at doubling frequencies, the encoding coordinate networks use
// to recover high-frequency detail.
//
// For an input of size S (1 for a scalar) and L levels, the output has
// size 2·L·S: level i contributes one block of sin(2^i · x) and one of
// cos(2^i · x), the cosine obtained by a π/2 phase offset so the whole
// encoding is a single sin over an expanded input:
//
//	out = sin(expand(2L)(x) * scales + offsets)
//
// With levels == 0 the input node is returned unchanged.
func PositionalEncoding(x *ad.Node, levels int) *ad.Node {
	if levels == 0 {
		return x
	}

	inSize := 1
	if x.Kind() == ad.Vector {
		inSize = len(x.Value().Vec())
	}

	outSize := 2 * levels * inSize
	scales := la.NewVec(outSize)
	offsets := la.NewVec(outSize)
	for i := 0; i < levels; i++ {
		scale := float32(math.Pow(2, float64(i)))
		for j := 2 * i * inSize; j < 2*i*inSize+inSize; j++ {
			scales[j] = scale
			scales[j+inSize] = scale
			offsets[j] = 0
			offsets[j+inSize] = float32(math.Pi / 2)
		}
	}

	return x.Expand(2 * levels).Mul(ad.ConstVector(scales)).Add(ad.ConstVector(offsets)).Sin()
}
