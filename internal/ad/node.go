package ad

import (
	"errors"
	"fmt"

	"github.com/gradix-ml/gradix/internal/la"
)

// ErrNoGrad is returned when Grad or Update is called on a node that no
// backward pass has reached since the gradient was last consumed.
var ErrNoGrad = errors.New("gradient not computed")

// ErrExponentGrad is returned by Backward when the graph asks for the
// gradient with respect to a node-valued exponent. That derivative needs an
// element-wise logarithm this design does not provide, so it fails loudly
// instead of computing something wrong.
var ErrExponentGrad = errors.New("gradient with respect to a node-valued exponent is not supported")

// Node is one value in the computation graph: a forward payload paired with
// a gradient slot and the backward rule that produced it.
//
// Children are the operand nodes this node was built from, in the fixed
// order the operator defines. The parent pointer records the most recent
// use of this node as an operand; it is advisory bookkeeping for
// diagnostics and never drives traversal.
type Node struct {
	value        Payload
	grad         Payload
	hasGrad      bool
	requiresGrad bool
	op           string
	backward     func(delta Payload) error
	print        func() string
	children     []*Node
	parent       *Node
}

func newLeaf(value Payload, requiresGrad bool) *Node {
	return &Node{value: value, requiresGrad: requiresGrad, op: "value"}
}

// newNode allocates an operator node: forward value, fixed operand order,
// requires-grad set, advisory parent back-reference on every operand.
func newNode(value Payload, op string, children ...*Node) *Node {
	n := &Node{value: value, requiresGrad: true, op: op, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// NewScalar creates a differentiable scalar leaf.
func NewScalar(x float32) *Node { return newLeaf(ScalarOf(x), true) }

// NewVector creates a differentiable vector leaf. The node shares the
// vector's backing storage so callers can poke initial parameter values.
func NewVector(v la.Vec) *Node { return newLeaf(VectorOf(v), true) }

// NewMatrix creates a differentiable matrix leaf sharing m's storage.
func NewMatrix(m *la.Mat) *Node { return newLeaf(MatrixOf(m), true) }

// ConstScalar creates a constant node: a wrapped literal that backward
// propagation never descends into.
func ConstScalar(x float32) *Node { return newLeaf(ScalarOf(x), false) }

// ConstVector creates a constant vector node.
func ConstVector(v la.Vec) *Node { return newLeaf(VectorOf(v), false) }

// ConstMatrix creates a constant matrix node.
func ConstMatrix(m *la.Mat) *Node { return newLeaf(MatrixOf(m), false) }

// Value returns the node's forward payload. Vector and matrix payloads
// share storage with the node, so training loops can mutate parameter
// values through them.
func (n *Node) Value() Payload { return n.value }

// SetValue overwrites the node's forward value in place. The new payload
// must have the node's shape.
func (n *Node) SetValue(p Payload) {
	if !sameShape(p, n.value) {
		panic(fmt.Sprintf("ad: SetValue shape mismatch: %s vs %s", p.Kind(), n.value.Kind()))
	}
	switch n.value.kind {
	case Vector:
		copy(n.value.v, p.v)
	case Matrix:
		copy(n.value.m.Data(), p.m.Data())
	default:
		n.value.s = p.s
	}
}

// Kind returns the shape kind of the node's value.
func (n *Node) Kind() Kind { return n.value.kind }

// Op returns the name of the operator that produced this node.
func (n *Node) Op() string { return n.op }

// RequiresGrad reports whether backward propagation descends into this node.
func (n *Node) RequiresGrad() bool { return n.requiresGrad }

// Parent returns the node that most recently used this node as an operand,
// or nil. Diagnostic only.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the operand nodes this node was built from.
func (n *Node) Children() []*Node { return n.children }

// Grad returns the gradient accumulated by the last backward pass. It
// fails with ErrNoGrad if no backward pass has reached this node.
func (n *Node) Grad() (Payload, error) {
	if !n.hasGrad {
		return Payload{}, fmt.Errorf("grad of %q node: %w", n.op, ErrNoGrad)
	}
	return n.grad, nil
}

// Backward runs a backward pass rooted at this node: the node's own
// gradient is seeded with ones and every ancestor that requires a gradient
// receives its contribution via the chain of backward rules. If the pass
// fails partway, gradients throughout the tree are undefined and the
// caller must re-run Backward after fixing the error.
func (n *Node) Backward() error {
	return n.propagate(onesLike(n.value))
}

// propagate accumulates one gradient contribution into the node and
// forwards it through the node's backward rule. Each rule receives the
// incremental contribution, not the accumulated total: every local
// derivative is linear in the parent gradient, so contributions from
// distinct parents of a shared node sum correctly without a scheduler.
func (n *Node) propagate(delta Payload) error {
	if !n.requiresGrad {
		// Constant or frozen node: a legitimate terminal, not an error.
		return nil
	}
	if n.hasGrad {
		n.grad = padd(n.grad, delta)
	} else {
		n.grad = delta.Clone()
		n.hasGrad = true
	}
	if n.backward == nil {
		return nil
	}
	return n.backward(delta)
}

// Update applies one gradient-descent step, value -= grad*lr, element-wise
// for vector and matrix nodes. The gradient is consumed: a second Update
// without an intervening backward pass fails with ErrNoGrad and leaves the
// value unchanged.
func (n *Node) Update(lr float32) error {
	if !n.hasGrad {
		return fmt.Errorf("update of %q node: %w", n.op, ErrNoGrad)
	}
	switch n.value.kind {
	case Vector:
		for i := range n.value.v {
			n.value.v[i] -= n.grad.v[i] * lr
		}
	case Matrix:
		d, g := n.value.m.Data(), n.grad.m.Data()
		for i := range d {
			d[i] -= g[i] * lr
		}
	default:
		n.value.s -= n.grad.s * lr
	}
	n.hasGrad = false
	return nil
}

// ZeroGrad discards any accumulated gradient, returning the node to the
// unvisited state. Call it on parameters that were skipped by a pass.
func (n *Node) ZeroGrad() {
	n.hasGrad = false
	n.grad = Payload{}
}

// String renders the expression tree that produced this node; leaves
// render their value.
func (n *Node) String() string {
	if n.print != nil {
		return n.print()
	}
	return n.value.String()
}
