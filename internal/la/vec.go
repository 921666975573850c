package la

import "fmt"

// Vec is a fixed-length vector of float32. The length is part of the
// value's identity: operations on vectors of different lengths panic.
type Vec []float32

// NewVec creates a zero vector of length n.
func NewVec(n int) Vec {
	if n <= 0 {
		panic(fmt.Sprintf("la: vector length must be positive, got %d", n))
	}
	return make(Vec, n)
}

// VecOf creates a vector from its elements.
func VecOf(xs ...float32) Vec {
	v := make(Vec, len(xs))
	copy(v, xs)
	return v
}

// FullVec creates a vector of length n with every element set to x.
func FullVec(n int, x float32) Vec {
	v := NewVec(n)
	for i := range v {
		v[i] = x
	}
	return v
}

// Clone returns a copy of the vector.
func (v Vec) Clone() Vec {
	c := make(Vec, len(v))
	copy(c, v)
	return c
}

// Sum returns the total of all elements.
func (v Vec) Sum() float32 {
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

// Map applies f to every element, producing a new vector.
func (v Vec) Map(f func(float32) float32) Vec {
	r := make(Vec, len(v))
	for i, x := range v {
		r[i] = f(x)
	}
	return r
}

// Add returns v + w element-wise.
func (v Vec) Add(w Vec) Vec {
	v.checkLen(w, "Add")
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub returns v - w element-wise.
func (v Vec) Sub(w Vec) Vec {
	v.checkLen(w, "Sub")
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] - w[i]
	}
	return r
}

// Mul returns the Hadamard product v ⊙ w.
func (v Vec) Mul(w Vec) Vec {
	v.checkLen(w, "Mul")
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] * w[i]
	}
	return r
}

// Div returns v / w element-wise.
func (v Vec) Div(w Vec) Vec {
	v.checkLen(w, "Div")
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] / w[i]
	}
	return r
}

// Scale returns v * s.
func (v Vec) Scale(s float32) Vec {
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] * s
	}
	return r
}

// AddScalar returns v + s element-wise.
func (v Vec) AddScalar(s float32) Vec {
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] + s
	}
	return r
}

// Pow returns v raised element-wise to the scalar exponent p.
func (v Vec) Pow(p float32) Vec {
	return v.Map(func(x float32) float32 { return powf(x, p) })
}

// Dot returns the inner product of v and w.
func (v Vec) Dot(w Vec) float32 {
	v.checkLen(w, "Dot")
	var s float32
	for i := range v {
		s += v[i] * w[i]
	}
	return s
}

// Fill sets every element to x in place.
func (v Vec) Fill(x float32) {
	for i := range v {
		v[i] = x
	}
}

func (v Vec) checkLen(w Vec, op string) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("la: Vec.%s length mismatch: %d vs %d", op, len(v), len(w)))
	}
}
