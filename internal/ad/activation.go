package ad

import (
	"fmt"
	"math"
)

// ReLU builds max(0, a) element-wise. The gradient is delta where the
// forward output is positive and zero elsewhere.
func (a *Node) ReLU() *Node {
	fwd := pmap(a.value, func(x float32) float32 {
		if x > 0 {
			return x
		}
		return 0
	})
	out := newNode(fwd, "relu", a)
	out.backward = func(delta Payload) error {
		if !a.requiresGrad {
			return nil
		}
		masked := pzip(out.value, delta, func(o, g float32) float32 {
			if o > 0 {
				return g
			}
			return 0
		})
		return a.propagate(masked)
	}
	out.print = func() string { return fmt.Sprintf("relu(%v)", a) }
	return out
}

// Sigmoid builds 1/(1+exp(-a)) element-wise. Because the derivative is
// expressible in the output, the rule reuses the forward value:
// delta * out * (1 - out).
func (a *Node) Sigmoid() *Node {
	out := newNode(pmap(a.value, sigmoidf), "sigmoid", a)
	out.backward = func(delta Payload) error {
		if !a.requiresGrad {
			return nil
		}
		d := pzip(out.value, delta, func(o, g float32) float32 { return g * o * (1 - o) })
		return a.propagate(d)
	}
	out.print = func() string { return fmt.Sprintf("sigmoid(%v)", a) }
	return out
}

func sigmoidf(x float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(float64(-x))))
}
