// Copyright 2025 Gradix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn is the public API for layer helpers built on the graph
// engine: dense layers, positional encoding and weight initialization.
package nn

import (
	"math/rand"

	"github.com/gradix-ml/gradix/internal/ad"
	"github.com/gradix-ml/gradix/internal/la"
	"github.com/gradix-ml/gradix/internal/nn"
)

// Dense is a fully connected layer computing W·x + b.
type Dense = nn.Dense

// NewDense creates a dense layer with N(0, std²) weights and zero bias.
func NewDense(in, out int, std float32, rng *rand.Rand) *Dense {
	return nn.NewDense(in, out, std, rng)
}

// PositionalEncoding maps a coordinate into sinusoids at doubling
// frequencies; see the internal package for the exact layout.
func PositionalEncoding(x *ad.Node, levels int) *ad.Node {
	return nn.PositionalEncoding(x, levels)
}

// NormalVec creates a vector drawn from N(0, std²).
func NormalVec(rng *rand.Rand, n int, std float32) la.Vec {
	return nn.NormalVec(rng, n, std)
}

// NormalMat creates a matrix drawn from N(0, std²).
func NormalMat(rng *rand.Rand, rows, cols int, std float32) *la.Mat {
	return nn.NormalMat(rng, rows, cols, std)
}
