// Copyright 2025 Gradix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ad is the public API of the computation-graph engine.
//
// Operators build a dynamic graph of fixed-shape values (scalars,
// fixed-length vectors, fixed-size matrices) as they run; Backward walks
// the graph from a chosen output and computes exact gradients for every
// ancestor that requires them.
//
// Example:
//
//	x := ad.NewVector(la.VecOf(1, 2, 3))
//	y := x.MulScalar(2).Sum()       // y == 12
//	if err := y.Backward(); err != nil {
//	    log.Fatal(err)
//	}
//	g, _ := x.Grad()                // [2 2 2]
package ad

import (
	iad "github.com/gradix-ml/gradix/internal/ad"
	"github.com/gradix-ml/gradix/internal/la"
)

// Node is one value in the computation graph: a forward payload, a
// gradient slot, and the backward rule that produced it.
type Node = iad.Node

// Payload is a fixed-shape value: a scalar, vector or matrix.
type Payload = iad.Payload

// Kind classifies a payload's shape.
type Kind = iad.Kind

// Shape kinds.
const (
	Scalar Kind = iad.Scalar
	Vector Kind = iad.Vector
	Matrix Kind = iad.Matrix
)

// Errors surfaced by the engine.
var (
	// ErrNoGrad: Grad or Update called before a backward pass reached the node.
	ErrNoGrad = iad.ErrNoGrad
	// ErrExponentGrad: differentiation with respect to a node-valued exponent.
	ErrExponentGrad = iad.ErrExponentGrad
)

// NewScalar creates a differentiable scalar leaf.
func NewScalar(x float32) *Node { return iad.NewScalar(x) }

// NewVector creates a differentiable vector leaf sharing v's storage.
func NewVector(v la.Vec) *Node { return iad.NewVector(v) }

// NewMatrix creates a differentiable matrix leaf sharing m's storage.
func NewMatrix(m *la.Mat) *Node { return iad.NewMatrix(m) }

// ConstScalar wraps a scalar literal in a constant (non-differentiable) node.
func ConstScalar(x float32) *Node { return iad.ConstScalar(x) }

// ConstVector wraps a vector in a constant node.
func ConstVector(v la.Vec) *Node { return iad.ConstVector(v) }

// ConstMatrix wraps a matrix in a constant node.
func ConstMatrix(m *la.Mat) *Node { return iad.ConstMatrix(m) }

// ScalarOf wraps a scalar in a payload.
func ScalarOf(x float32) Payload { return iad.ScalarOf(x) }

// VectorOf wraps a vector in a payload without copying.
func VectorOf(v la.Vec) Payload { return iad.VectorOf(v) }

// MatrixOf wraps a matrix in a payload without copying.
func MatrixOf(m *la.Mat) Payload { return iad.MatrixOf(m) }

// PowNode builds base^exponent for a node-valued scalar exponent. The
// backward pass fails with ErrExponentGrad if the exponent requires a
// gradient.
func PowNode(base, exponent *Node) *Node { return iad.PowNode(base, exponent) }
