// Package la implements the fixed-size linear algebra primitives the
// autodiff graph is built on: vectors and row-major matrices of float32
// with element-wise maps, reductions, transpose and the matrix-vector
// product. Shapes are fixed at construction; mixing lengths is a
// programmer error and panics.
package la
