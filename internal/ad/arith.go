package ad

import "fmt"

// Add builds a + b. A scalar operand broadcasts against a vector or matrix
// operand; the gradient passes straight through to each operand, summed
// down where the operand is the broadcast scalar.
func (a *Node) Add(b *Node) *Node {
	out := newNode(padd(a.value, b.value), "+", a, b)
	out.backward = func(delta Payload) error {
		if a.requiresGrad {
			if err := a.propagate(reduceTo(delta, a.value)); err != nil {
				return err
			}
		}
		if b.requiresGrad {
			if err := b.propagate(reduceTo(delta, b.value)); err != nil {
				return err
			}
		}
		return nil
	}
	out.print = func() string { return fmt.Sprintf("%v+%v", a, b) }
	return out
}

// AddScalar builds a + c, wrapping the literal in a constant node.
func (a *Node) AddScalar(c float32) *Node { return a.Add(ConstScalar(c)) }

// Sub builds a - b. Gradients are the pass-through of Add with the right
// operand's contribution negated.
func (a *Node) Sub(b *Node) *Node {
	out := newNode(psub(a.value, b.value), "-", a, b)
	out.backward = func(delta Payload) error {
		if a.requiresGrad {
			if err := a.propagate(reduceTo(delta, a.value)); err != nil {
				return err
			}
		}
		if b.requiresGrad {
			if err := b.propagate(pneg(reduceTo(delta, b.value))); err != nil {
				return err
			}
		}
		return nil
	}
	out.print = func() string { return fmt.Sprintf("%v-%v", a, b) }
	return out
}

// SubScalar builds a - c.
func (a *Node) SubScalar(c float32) *Node { return a.Sub(ConstScalar(c)) }

// Mul builds a * b and picks the gradient law from the operand kinds:
//
//   - scalar×scalar: product rule, each side gets delta times the sibling
//   - scalar×(vector|matrix): element-wise with the sibling, the scalar
//     side's gradient summed back down to scalar
//   - vector⊙vector, matrix⊙matrix: Hadamard, local gradient is the
//     sibling's value
//   - matrix×vector: linear layer; vector grad = Mᵗ·delta, matrix grad =
//     delta ⊗ vectorValue
func (a *Node) Mul(b *Node) *Node {
	out := newNode(mulForward(a.value, b.value), "*", a, b)
	out.backward = func(delta Payload) error {
		if a.requiresGrad {
			if err := a.propagate(gradMul(delta, b.value, a.value)); err != nil {
				return err
			}
		}
		if b.requiresGrad {
			if err := b.propagate(gradMul(delta, a.value, b.value)); err != nil {
				return err
			}
		}
		return nil
	}
	out.print = func() string { return fmt.Sprintf("%v*%v", a, b) }
	return out
}

// MulScalar builds a * c.
func (a *Node) MulScalar(c float32) *Node { return a.Mul(ConstScalar(c)) }

// Div builds a / b element-wise with scalar broadcast. Quotient rule: the
// numerator receives delta/b, the denominator -delta*a/b², each summed
// down to scalar where the operand is scalar.
func (a *Node) Div(b *Node) *Node {
	out := newNode(pdiv(a.value, b.value), "/", a, b)
	out.backward = func(delta Payload) error {
		if a.requiresGrad {
			if err := a.propagate(reduceTo(pdiv(delta, b.value), a.value)); err != nil {
				return err
			}
		}
		if b.requiresGrad {
			d := pneg(pdiv(pmul(delta, a.value), pmul(b.value, b.value)))
			if err := b.propagate(reduceTo(d, b.value)); err != nil {
				return err
			}
		}
		return nil
	}
	out.print = func() string { return fmt.Sprintf("%v/%v", a, b) }
	return out
}

// DivScalar builds a / c.
func (a *Node) DivScalar(c float32) *Node { return a.Div(ConstScalar(c)) }

// Neg builds -a.
func (a *Node) Neg() *Node {
	out := newNode(pneg(a.value), "neg", a)
	out.backward = func(delta Payload) error {
		if !a.requiresGrad {
			return nil
		}
		return a.propagate(pneg(delta))
	}
	out.print = func() string { return fmt.Sprintf("-%v", a) }
	return out
}
