// Package ad implements reverse-mode automatic differentiation over a
// dynamic computation graph of fixed-shape values.
//
// Every operator computes its forward value, allocates a Node that records
// its operands as children, and attaches a backward rule closure that knows
// the operator's local derivative for the exact shape combination involved
// (scalar, fixed vector, fixed matrix). Backward on a root node seeds its
// gradient with ones and walks the closure chain depth-first, accumulating
// gradient contributions into every ancestor that requires them.
//
// Example:
//
//	x := ad.NewScalar(-3)
//	y := x.Neg().MulScalar(3).AddScalar(2).ReLU()
//	if err := y.Backward(); err != nil {
//	    log.Fatal(err)
//	}
//	g, _ := x.Grad() // dy/dx = -3
package ad
