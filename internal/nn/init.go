package nn

import (
	"math/rand"

	"github.com/gradix-ml/gradix/internal/la"
)

// NormalVec creates a vector with elements drawn from N(0, std²).
func NormalVec(rng *rand.Rand, n int, std float32) la.Vec {
	v := la.NewVec(n)
	for i := range v {
		//nolint:gosec // math/rand is fine for weight initialization
		v[i] = float32(rng.NormFloat64()) * std
	}
	return v
}

// NormalMat creates a matrix with elements drawn from N(0, std²).
func NormalMat(rng *rand.Rand, rows, cols int, std float32) *la.Mat {
	m := la.NewMat(rows, cols)
	d := m.Data()
	for i := range d {
		//nolint:gosec // math/rand is fine for weight initialization
		d[i] = float32(rng.NormFloat64()) * std
	}
	return m
}
