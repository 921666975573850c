package ad

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/la"
)

// Sum reduces a vector or matrix to the scalar total of its elements; a
// scalar input passes through. Every element contributed additively with
// coefficient 1, so the backward rule broadcasts the scalar gradient back
// to the input's shape unchanged.
func (a *Node) Sum() *Node {
	out := newNode(ScalarOf(psum(a.value)), "sum", a)
	out.backward = func(delta Payload) error {
		if !a.requiresGrad {
			return nil
		}
		return a.propagate(fullLike(a.value, delta.Scalar()))
	}
	out.print = func() string { return fmt.Sprintf("sum(%v)", a) }
	return out
}

// Expand replicates a scalar into a vector of length n, or a vector of
// length S into a vector of length n*S laid out in blocks:
// out[i*S+j] = src[j]. The backward rule re-sums, for each source element,
// the gradient of every replicated position — for a vector source that is
// every position congruent to j modulo S.
func (a *Node) Expand(n int) *Node {
	if n <= 0 {
		panic(fmt.Sprintf("ad: Expand count must be positive, got %d", n))
	}
	var out *Node
	switch a.value.kind {
	case Scalar:
		out = newNode(VectorOf(la.FullVec(n, a.value.s)), "expand", a)
		out.backward = func(delta Payload) error {
			if !a.requiresGrad {
				return nil
			}
			return a.propagate(ScalarOf(delta.Vec().Sum()))
		}
	case Vector:
		src := a.value.v
		s := len(src)
		r := la.NewVec(n * s)
		for i := 0; i < n; i++ {
			copy(r[i*s:(i+1)*s], src)
		}
		out = newNode(VectorOf(r), "expand", a)
		out.backward = func(delta Payload) error {
			if !a.requiresGrad {
				return nil
			}
			g := la.NewVec(s)
			dv := delta.Vec()
			for i := 0; i < n; i++ {
				for j := 0; j < s; j++ {
					g[j] += dv[i*s+j]
				}
			}
			return a.propagate(VectorOf(g))
		}
	default:
		panic(fmt.Sprintf("ad: Expand of a %s is not supported", a.value.kind))
	}
	out.print = func() string { return fmt.Sprintf("expand(%v)", a) }
	return out
}
