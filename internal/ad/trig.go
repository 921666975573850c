package ad

import (
	"fmt"
	"math"
)

// Sin builds sin(a) element-wise; the gradient is delta * cos(a).
func (a *Node) Sin() *Node {
	out := newNode(pmap(a.value, sinf), "sin", a)
	out.backward = func(delta Payload) error {
		if !a.requiresGrad {
			return nil
		}
		d := pzip(a.value, delta, func(x, g float32) float32 { return g * cosf(x) })
		return a.propagate(d)
	}
	out.print = func() string { return fmt.Sprintf("sin(%v)", a) }
	return out
}

// Cos builds cos(a) element-wise; the gradient is -delta * sin(a).
func (a *Node) Cos() *Node {
	out := newNode(pmap(a.value, cosf), "cos", a)
	out.backward = func(delta Payload) error {
		if !a.requiresGrad {
			return nil
		}
		d := pzip(a.value, delta, func(x, g float32) float32 { return -g * sinf(x) })
		return a.propagate(d)
	}
	out.print = func() string { return fmt.Sprintf("cos(%v)", a) }
	return out
}

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }
