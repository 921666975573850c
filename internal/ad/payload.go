package ad

import (
	"fmt"
	"math"

	"github.com/gradix-ml/gradix/internal/la"
)

// Kind classifies the shape of a node's value: scalar, fixed-length vector
// or fixed-size matrix. Operators dispatch on the kind pair of their
// operands to pick the correct local gradient law.
type Kind int

const (
	Scalar Kind = iota
	Vector
	Matrix
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	case Matrix:
		return "matrix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Payload holds one fixed-shape value: the forward result or the gradient
// of a node. A node's value and gradient always share the same shape.
type Payload struct {
	kind Kind
	s    float32
	v    la.Vec
	m    *la.Mat
}

// ScalarOf wraps a scalar in a payload.
func ScalarOf(x float32) Payload { return Payload{kind: Scalar, s: x} }

// VectorOf wraps a vector in a payload. The vector is not copied: the
// payload shares its backing storage.
func VectorOf(v la.Vec) Payload { return Payload{kind: Vector, v: v} }

// MatrixOf wraps a matrix in a payload. The matrix is not copied.
func MatrixOf(m *la.Mat) Payload { return Payload{kind: Matrix, m: m} }

// Kind returns the payload's shape kind.
func (p Payload) Kind() Kind { return p.kind }

// Scalar returns the scalar value. Panics on a non-scalar payload.
func (p Payload) Scalar() float32 {
	if p.kind != Scalar {
		panic(fmt.Sprintf("ad: Scalar() called on %s payload", p.kind))
	}
	return p.s
}

// Vec returns the vector value. Panics on a non-vector payload.
func (p Payload) Vec() la.Vec {
	if p.kind != Vector {
		panic(fmt.Sprintf("ad: Vec() called on %s payload", p.kind))
	}
	return p.v
}

// Mat returns the matrix value. Panics on a non-matrix payload.
func (p Payload) Mat() *la.Mat {
	if p.kind != Matrix {
		panic(fmt.Sprintf("ad: Mat() called on %s payload", p.kind))
	}
	return p.m
}

// Clone returns a deep copy of the payload.
func (p Payload) Clone() Payload {
	switch p.kind {
	case Vector:
		return VectorOf(p.v.Clone())
	case Matrix:
		return MatrixOf(p.m.Clone())
	default:
		return p
	}
}

// String renders the payload value.
func (p Payload) String() string {
	switch p.kind {
	case Vector:
		return fmt.Sprintf("%v", []float32(p.v))
	case Matrix:
		return matString(p.m)
	default:
		return fmt.Sprintf("%g", p.s)
	}
}

func matString(m *la.Mat) string {
	s := "["
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%v", []float32(m.Data()[i*m.Cols():(i+1)*m.Cols()]))
	}
	return s + "]"
}

// sameShape reports whether two payloads have identical kind and dimensions.
func sameShape(a, b Payload) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Vector:
		return len(a.v) == len(b.v)
	case Matrix:
		return a.m.Rows() == b.m.Rows() && a.m.Cols() == b.m.Cols()
	default:
		return true
	}
}

// onesLike returns a payload of p's shape with every element set to 1,
// the multiplicative identity used to seed a backward pass.
func onesLike(p Payload) Payload { return fullLike(p, 1) }

// fullLike returns a payload of p's shape with every element set to x.
func fullLike(p Payload, x float32) Payload {
	switch p.kind {
	case Vector:
		return VectorOf(la.FullVec(len(p.v), x))
	case Matrix:
		m := la.NewMat(p.m.Rows(), p.m.Cols())
		for i := range m.Data() {
			m.Data()[i] = x
		}
		return MatrixOf(m)
	default:
		return ScalarOf(x)
	}
}

// psum totals every element of a payload.
func psum(p Payload) float32 {
	switch p.kind {
	case Vector:
		return p.v.Sum()
	case Matrix:
		return p.m.Sum()
	default:
		return p.s
	}
}

// pmap applies f to every element of a payload.
func pmap(p Payload, f func(float32) float32) Payload {
	switch p.kind {
	case Vector:
		return VectorOf(p.v.Map(f))
	case Matrix:
		return MatrixOf(p.m.Map(f))
	default:
		return ScalarOf(f(p.s))
	}
}

// pzip applies f pairwise to two same-shape payloads.
func pzip(a, b Payload, f func(x, y float32) float32) Payload {
	if !sameShape(a, b) {
		panic(fmt.Sprintf("ad: shape mismatch in element-wise op: %s vs %s", a.kind, b.kind))
	}
	switch a.kind {
	case Vector:
		r := la.NewVec(len(a.v))
		for i := range r {
			r[i] = f(a.v[i], b.v[i])
		}
		return VectorOf(r)
	case Matrix:
		r := la.NewMat(a.m.Rows(), a.m.Cols())
		for i := range r.Data() {
			r.Data()[i] = f(a.m.Data()[i], b.m.Data()[i])
		}
		return MatrixOf(r)
	default:
		return ScalarOf(f(a.s, b.s))
	}
}

// broadcastZip applies f pairwise, broadcasting a scalar operand on either
// side against the other operand's shape.
func broadcastZip(a, b Payload, f func(x, y float32) float32) Payload {
	switch {
	case a.kind == Scalar && b.kind != Scalar:
		return pmap(b, func(y float32) float32 { return f(a.s, y) })
	case b.kind == Scalar && a.kind != Scalar:
		return pmap(a, func(x float32) float32 { return f(x, b.s) })
	default:
		return pzip(a, b, f)
	}
}

func padd(a, b Payload) Payload {
	return broadcastZip(a, b, func(x, y float32) float32 { return x + y })
}

func psub(a, b Payload) Payload {
	return broadcastZip(a, b, func(x, y float32) float32 { return x - y })
}

// pmul is the element-wise/broadcast multiplication used by forward passes
// and by gradient rules; the matrix-vector product is handled separately.
func pmul(a, b Payload) Payload {
	return broadcastZip(a, b, func(x, y float32) float32 { return x * y })
}

func pdiv(a, b Payload) Payload {
	return broadcastZip(a, b, func(x, y float32) float32 { return x / y })
}

func pneg(p Payload) Payload {
	return pmap(p, func(x float32) float32 { return -x })
}

// reduceTo sums a gradient down to the target payload's shape. A scalar
// operand broadcast against a larger operand receives the sum of all
// element contributions; matching shapes pass through unchanged.
func reduceTo(delta, target Payload) Payload {
	if target.kind == Scalar && delta.kind != Scalar {
		return ScalarOf(psum(delta))
	}
	if !sameShape(delta, target) {
		panic(fmt.Sprintf("ad: cannot reduce %s gradient to %s operand", delta.kind, target.kind))
	}
	return delta
}

// gradMul picks the multiplication gradient law for one operand of a
// product node. delta is the parent's gradient contribution, sibling the
// other operand's forward value, target the operand receiving the gradient.
//
//   - vector operand of a matrix×vector product: Mᵗ · delta
//   - matrix operand of a matrix×vector product: delta ⊗ vectorValue
//   - everything else: element-wise product with the sibling's value,
//     summed down if the operand is a broadcast scalar
func gradMul(delta, sibling, target Payload) Payload {
	switch {
	case target.kind == Vector && sibling.kind == Matrix:
		return VectorOf(sibling.m.Transpose().MulVec(delta.v))
	case target.kind == Matrix && sibling.kind == Vector:
		return MatrixOf(la.Outer(delta.v, sibling.v))
	default:
		return reduceTo(pmul(sibling, delta), target)
	}
}

// mulForward computes the forward value of a product node. Matrix×vector is
// the linear-layer product; every other kind pair is element-wise with
// scalar broadcast.
func mulForward(a, b Payload) Payload {
	switch {
	case a.kind == Matrix && b.kind == Vector:
		return VectorOf(a.m.MulVec(b.v))
	case a.kind == Vector && b.kind == Matrix:
		panic("ad: vector×matrix product is not supported; put the matrix on the left")
	default:
		return pmul(a, b)
	}
}

func powf(x, p float32) float32 {
	return float32(math.Pow(float64(x), float64(p)))
}
