package ad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/internal/ad"
	"github.com/gradix-ml/gradix/internal/la"
)

// TestAddConstant_GradientIsOne checks that y = x + c passes the gradient
// straight through for every shape kind.
func TestAddConstant_GradientIsOne(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		x := ad.NewScalar(3)
		y := x.AddScalar(4)
		require.NoError(t, y.Backward())

		g, err := x.Grad()
		require.NoError(t, err)
		assert.Equal(t, float32(1), g.Scalar())
	})

	t.Run("vector", func(t *testing.T) {
		x := ad.NewVector(la.VecOf(1, 2, 3))
		y := x.AddScalar(4)
		require.NoError(t, y.Backward())

		g, err := x.Grad()
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 1, 1}, []float32(g.Vec()))
	})

	t.Run("matrix", func(t *testing.T) {
		x := ad.NewMatrix(la.MatFromSlice(2, 2, []float32{1, 2, 3, 4}))
		y := x.AddScalar(4)
		require.NoError(t, y.Backward())

		g, err := x.Grad()
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 1, 1, 1}, g.Mat().Data())
	})
}

// TestBroadcastScalar_GradientIsReduced checks that a scalar broadcast
// against a vector receives the summed gradient.
func TestBroadcastScalar_GradientIsReduced(t *testing.T) {
	s := ad.NewScalar(2)
	v := ad.NewVector(la.VecOf(1, 2, 3))

	y := v.Add(s)
	require.NoError(t, y.Backward())

	gs, err := s.Grad()
	require.NoError(t, err)
	assert.Equal(t, float32(3), gs.Scalar(), "one contribution per element")

	gv, err := v.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1}, []float32(gv.Vec()))
}

func TestSumOfScaledVector(t *testing.T) {
	v := ad.NewVector(la.VecOf(1, 2, 3))
	y := v.MulScalar(2).Sum()

	assert.Equal(t, float32(12), y.Value().Scalar())

	require.NoError(t, y.Backward())
	g, err := v.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 2, 2}, []float32(g.Vec()))
}

func TestExpand_Scalar(t *testing.T) {
	x := ad.NewScalar(5)
	e := x.Expand(3)
	assert.Equal(t, []float32{5, 5, 5}, []float32(e.Value().Vec()))

	require.NoError(t, e.Sum().Backward())
	g, err := x.Grad()
	require.NoError(t, err)
	assert.Equal(t, float32(3), g.Scalar(), "one contribution per replica")
}

func TestExpand_VectorBlocks(t *testing.T) {
	v := ad.NewVector(la.VecOf(1, 2))
	e := v.Expand(2)
	assert.Equal(t, []float32{1, 2, 1, 2}, []float32(e.Value().Vec()),
		"blocks replicate the source in order")

	// Summing gives every replicated position a parent gradient of 1.
	require.NoError(t, e.Sum().Backward())
	g, err := v.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 2}, []float32(g.Vec()),
		"each source element collects both of its replicas")
}

// TestMatVec_LinearLayerGradients seeds the product's gradient with a
// chosen vector g by summing g-weighted components, then checks the two
// linear-layer laws: W.grad = g ⊗ x and x.grad = Wᵗ·g.
func TestMatVec_LinearLayerGradients(t *testing.T) {
	wData := []float32{1, 2, 3, 4, 5, 6} // 2x3
	xData := []float32{7, 8, 9}
	gData := []float32{10, 20}

	w := ad.NewMatrix(la.MatFromSlice(2, 3, wData))
	x := ad.NewVector(la.VecOf(xData...))

	y := w.Mul(x)
	loss := y.Mul(ad.ConstVector(la.VecOf(gData...))).Sum()
	require.NoError(t, loss.Backward())

	gw, err := w.Grad()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, gData[i]*xData[j], gw.Mat().At(i, j),
				"W.grad[%d,%d] should be g[%d]*x[%d]", i, j, i, j)
		}
	}

	gx, err := x.Grad()
	require.NoError(t, err)
	wt := la.MatFromSlice(2, 3, wData).Transpose()
	want := wt.MulVec(la.VecOf(gData...))
	assert.Equal(t, []float32(want), []float32(gx.Vec()))
}

func TestDiv_QuotientRule(t *testing.T) {
	a := ad.NewScalar(6)
	b := ad.NewScalar(2)

	y := a.Div(b)
	assert.Equal(t, float32(3), y.Value().Scalar())

	require.NoError(t, y.Backward())

	ga, err := a.Grad()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ga.Scalar(), 1e-6, "d(a/b)/da = 1/b")

	gb, err := b.Grad()
	require.NoError(t, err)
	assert.InDelta(t, -1.5, gb.Scalar(), 1e-6, "d(a/b)/db = -a/b²")
}

func TestDiv_VectorByScalar(t *testing.T) {
	v := ad.NewVector(la.VecOf(2, 4))
	s := ad.NewScalar(2)

	y := v.Div(s).Sum()
	require.NoError(t, y.Backward())

	gv, err := v.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, []float32(gv.Vec()))

	gs, err := s.Grad()
	require.NoError(t, err)
	assert.InDelta(t, -1.5, gs.Scalar(), 1e-6, "-(2+4)/4 summed to scalar")
}

func TestNeg(t *testing.T) {
	x := ad.NewScalar(3)
	y := x.Neg()
	assert.Equal(t, float32(-3), y.Value().Scalar())

	require.NoError(t, y.Backward())
	g, err := x.Grad()
	require.NoError(t, err)
	assert.Equal(t, float32(-1), g.Scalar())
}

func TestReLU_MasksNegativeElements(t *testing.T) {
	v := ad.NewVector(la.VecOf(-1, 2))
	y := v.ReLU()
	assert.Equal(t, []float32{0, 2}, []float32(y.Value().Vec()))

	require.NoError(t, y.Sum().Backward())
	g, err := v.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1}, []float32(g.Vec()))
}

func TestSigmoid_GradientFromOutput(t *testing.T) {
	x := ad.NewScalar(0)
	y := x.Sigmoid()
	assert.InDelta(t, 0.5, y.Value().Scalar(), 1e-6)

	require.NoError(t, y.Backward())
	g, err := x.Grad()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, g.Scalar(), 1e-6, "σ'(0) = σ(0)(1-σ(0))")
}

func TestSinCos_Gradients(t *testing.T) {
	x := ad.NewScalar(0)
	require.NoError(t, x.Sin().Backward())
	g, err := x.Grad()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g.Scalar(), 1e-6, "d sin/dx at 0 is cos(0)")

	x2 := ad.NewScalar(float32(math.Pi / 2))
	require.NoError(t, x2.Cos().Backward())
	g2, err := x2.Grad()
	require.NoError(t, err)
	assert.InDelta(t, -1.0, g2.Scalar(), 1e-6, "d cos/dx at π/2 is -sin(π/2)")
}

func TestPow_ConstantExponent(t *testing.T) {
	x := ad.NewScalar(3)
	y := x.Pow(2)
	assert.Equal(t, float32(9), y.Value().Scalar())

	require.NoError(t, y.Backward())
	g, err := x.Grad()
	require.NoError(t, err)
	assert.InDelta(t, 6.0, g.Scalar(), 1e-6, "d x²/dx = 2x")
}

func TestPow_VectorBase(t *testing.T) {
	v := ad.NewVector(la.VecOf(1, 2, 3))
	y := v.Pow(2).Sum()
	require.NoError(t, y.Backward())

	g, err := v.Grad()
	require.NoError(t, err)
	want := []float32{2, 4, 6}
	for i := range want {
		assert.InDelta(t, want[i], g.Vec()[i], 1e-5)
	}
}

func TestPowNode_DifferentiableExponentFailsLoudly(t *testing.T) {
	base := ad.NewScalar(2)
	exp := ad.NewScalar(3)

	y := ad.PowNode(base, exp)
	assert.Equal(t, float32(8), y.Value().Scalar(), "forward value is well defined")

	err := y.Backward()
	require.ErrorIs(t, err, ad.ErrExponentGrad)
}

func TestPowNode_ConstantExponentWorks(t *testing.T) {
	base := ad.NewScalar(2)
	exp := ad.ConstScalar(3)

	y := ad.PowNode(base, exp)
	require.NoError(t, y.Backward())

	g, err := base.Grad()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, g.Scalar(), 1e-5, "d x³/dx at 2 is 3·2²")
}

// TestSharedOperand_ContributionsAccumulate covers diamond dependencies:
// a node used by more than one parent collects the sum of both paths.
func TestSharedOperand_ContributionsAccumulate(t *testing.T) {
	t.Run("squared via self-product", func(t *testing.T) {
		x := ad.NewScalar(3)
		y := x.Mul(x)
		require.NoError(t, y.Backward())

		g, err := x.Grad()
		require.NoError(t, err)
		assert.Equal(t, float32(6), g.Scalar(), "d x²/dx = 2x")
	})

	t.Run("two branches", func(t *testing.T) {
		x := ad.NewScalar(1)
		y := x.MulScalar(3).Add(x.MulScalar(2))
		require.NoError(t, y.Backward())

		g, err := x.Grad()
		require.NoError(t, err)
		assert.Equal(t, float32(5), g.Scalar())
	})
}

func TestHadamard_VectorVector(t *testing.T) {
	a := ad.NewVector(la.VecOf(1, 2))
	b := ad.NewVector(la.VecOf(3, 4))

	y := a.Mul(b).Sum()
	require.NoError(t, y.Backward())

	ga, err := a.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4}, []float32(ga.Vec()), "sibling's value")

	gb, err := b.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, []float32(gb.Vec()))
}

func TestScalarTimesMatrix_BroadcastReduction(t *testing.T) {
	s := ad.NewScalar(2)
	m := ad.NewMatrix(la.MatFromSlice(2, 2, []float32{1, 2, 3, 4}))

	y := s.Mul(m).Sum()
	require.NoError(t, y.Backward())

	gs, err := s.Grad()
	require.NoError(t, err)
	assert.Equal(t, float32(10), gs.Scalar(), "sum of the matrix elements")

	gm, err := m.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 2, 2, 2}, gm.Mat().Data())
}
