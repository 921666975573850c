// Copyright 2025 Gradix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package la is the public API of the fixed-size linear algebra
// primitives the graph engine computes with.
package la

import "github.com/gradix-ml/gradix/internal/la"

// Vec is a fixed-length vector of float32.
type Vec = la.Vec

// Mat is a fixed-size row-major matrix of float32.
type Mat = la.Mat

// NewVec creates a zero vector of length n.
func NewVec(n int) Vec { return la.NewVec(n) }

// VecOf creates a vector from its elements.
func VecOf(xs ...float32) Vec { return la.VecOf(xs...) }

// FullVec creates a length-n vector filled with x.
func FullVec(n int, x float32) Vec { return la.FullVec(n, x) }

// NewMat creates a zero matrix of the given size.
func NewMat(rows, cols int) *Mat { return la.NewMat(rows, cols) }

// MatFromSlice creates a matrix from row-major data.
func MatFromSlice(rows, cols int, data []float32) *Mat { return la.MatFromSlice(rows, cols, data) }

// Identity creates the n×n identity matrix.
func Identity(n int) *Mat { return la.Identity(n) }

// Outer returns the outer product a ⊗ b.
func Outer(a, b Vec) *Mat { return la.Outer(a, b) }
