package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradix-ml/gradix/internal/ad"
	"github.com/gradix-ml/gradix/internal/la"
	"github.com/gradix-ml/gradix/internal/optim"
)

func TestSGD_Step(t *testing.T) {
	p := ad.NewScalar(3)
	sgd := optim.NewSGD([]*ad.Node{p}, optim.SGDConfig{LR: 0.5})

	loss := p.MulScalar(2)
	require.NoError(t, loss.Backward())
	require.NoError(t, sgd.Step())

	assert.Equal(t, float32(2), p.Value().Scalar(), "3 - 0.5*2")
}

func TestSGD_StepSkipsConsumedGradients(t *testing.T) {
	p := ad.NewScalar(3)
	sgd := optim.NewSGD([]*ad.Node{p}, optim.SGDConfig{LR: 0.5})

	require.NoError(t, p.MulScalar(2).Backward())
	require.NoError(t, sgd.Step())

	// A second step without a fresh backward pass finds no gradient and
	// leaves the parameter alone.
	require.NoError(t, sgd.Step())
	assert.Equal(t, float32(2), p.Value().Scalar())
}

func TestSGD_StepSkipsUnreachedParameters(t *testing.T) {
	used := ad.NewScalar(1)
	unused := ad.NewScalar(5)
	sgd := optim.NewSGD([]*ad.Node{used, unused}, optim.SGDConfig{LR: 1})

	require.NoError(t, used.AddScalar(1).Backward())
	require.NoError(t, sgd.Step())

	assert.Equal(t, float32(0), used.Value().Scalar())
	assert.Equal(t, float32(5), unused.Value().Scalar())
}

func TestSGD_VectorParameter(t *testing.T) {
	p := ad.NewVector(la.VecOf(1, 2))
	sgd := optim.NewSGD([]*ad.Node{p}, optim.SGDConfig{LR: 0.5})

	require.NoError(t, p.Sum().Backward())
	require.NoError(t, sgd.Step())

	assert.Equal(t, []float32{0.5, 1.5}, []float32(p.Value().Vec()))
}

func TestSGD_Momentum(t *testing.T) {
	p := ad.NewScalar(0)
	sgd := optim.NewSGD([]*ad.Node{p}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Gradient is 1 on every pass, so velocity compounds: 1, then 1.9.
	require.NoError(t, p.AddScalar(1).Backward())
	require.NoError(t, sgd.Step())
	assert.InDelta(t, -0.1, p.Value().Scalar(), 1e-6)

	require.NoError(t, p.AddScalar(1).Backward())
	require.NoError(t, sgd.Step())
	assert.InDelta(t, -0.29, p.Value().Scalar(), 1e-6)
}

func TestSGD_MomentumConsumesGradient(t *testing.T) {
	p := ad.NewScalar(0)
	sgd := optim.NewSGD([]*ad.Node{p}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	require.NoError(t, p.AddScalar(1).Backward())
	require.NoError(t, sgd.Step())

	before := p.Value().Scalar()
	require.NoError(t, sgd.Step())
	assert.Equal(t, before, p.Value().Scalar(), "no fresh gradient, no movement")
}

func TestSGD_DefaultLR(t *testing.T) {
	sgd := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, float32(0.01), sgd.LR())

	sgd.SetLR(0.2)
	assert.Equal(t, float32(0.2), sgd.LR())
}

func TestSGD_ZeroGrad(t *testing.T) {
	p := ad.NewScalar(1)
	sgd := optim.NewSGD([]*ad.Node{p}, optim.SGDConfig{LR: 1})

	require.NoError(t, p.AddScalar(1).Backward())
	sgd.ZeroGrad()

	require.NoError(t, sgd.Step())
	assert.Equal(t, float32(1), p.Value().Scalar(), "cleared gradient applies no update")
}
