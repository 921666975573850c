package ad

import "fmt"

// Pow builds base^p for a plain scalar exponent. The base gradient is
// delta * p * base^(p-1), element-wise for vector and matrix bases.
func (a *Node) Pow(p float32) *Node {
	out := newNode(pmap(a.value, func(x float32) float32 { return powf(x, p) }), "**", a)
	out.backward = func(delta Payload) error {
		if !a.requiresGrad {
			return nil
		}
		deriv := pmap(a.value, func(x float32) float32 { return p * powf(x, p-1) })
		return a.propagate(pmul(delta, deriv))
	}
	out.print = func() string { return fmt.Sprintf("%v**%g", a, p) }
	return out
}

// PowNode builds base^exponent where the exponent is itself a graph node.
// The exponent must be a scalar-kind node. The forward value and the base
// gradient are well defined, but the gradient with respect to the exponent
// is not implemented: a backward pass that reaches a differentiable
// exponent fails with ErrExponentGrad rather than silently producing a
// wrong gradient.
func PowNode(base, exponent *Node) *Node {
	if exponent.Kind() != Scalar {
		panic(fmt.Sprintf("ad: PowNode exponent must be scalar, got %s", exponent.Kind()))
	}
	p := exponent.value.Scalar()
	out := newNode(pmap(base.value, func(x float32) float32 { return powf(x, p) }), "**", base, exponent)
	out.backward = func(delta Payload) error {
		if exponent.requiresGrad {
			return fmt.Errorf("pow: %w", ErrExponentGrad)
		}
		if !base.requiresGrad {
			return nil
		}
		deriv := pmap(base.value, func(x float32) float32 { return p * powf(x, p-1) })
		return base.propagate(pmul(delta, deriv))
	}
	out.print = func() string { return fmt.Sprintf("%v**%v", base, exponent) }
	return out
}
