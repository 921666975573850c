// Package optim implements gradient-descent optimizers over parameter
// nodes of the autodiff graph.
package optim

import (
	"errors"
	"fmt"

	"github.com/gradix-ml/gradix/internal/ad"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	sgd := optim.NewSGD(model.Params(), optim.SGDConfig{LR: 0.15})
//	for step := 0; step < steps; step++ {
//	    loss := model.Forward(x).Sub(y).Pow(2).Sum()
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//	    if err := sgd.Step(); err != nil {
//	        return err
//	    }
//	}
type SGD struct {
	params     []*ad.Node
	lr         float32
	momentum   float32
	velocities map[*ad.Node][]float32
}

// SGDConfig holds SGD hyperparameters.
type SGDConfig struct {
	LR       float32 // learning rate (default 0.01)
	Momentum float32 // momentum factor, [0, 1)
}

// NewSGD creates an SGD optimizer over the given parameter nodes.
func NewSGD(params []*ad.Node, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*ad.Node][]float32),
	}
}

// Step applies one descent update to every parameter that received a
// gradient in the last backward pass. Parameters the pass never reached
// are skipped. Each applied update consumes the parameter's gradient.
func (s *SGD) Step() error {
	for _, p := range s.params {
		grad, err := p.Grad()
		if err != nil {
			if errors.Is(err, ad.ErrNoGrad) {
				continue
			}
			return fmt.Errorf("sgd step: %w", err)
		}

		if s.momentum == 0 {
			if err := p.Update(s.lr); err != nil {
				return fmt.Errorf("sgd step: %w", err)
			}
			continue
		}

		s.stepWithMomentum(p, grad)
	}
	return nil
}

func (s *SGD) stepWithMomentum(p *ad.Node, grad ad.Payload) {
	g := flatten(grad)

	vel, ok := s.velocities[p]
	if !ok {
		vel = make([]float32, len(g))
		s.velocities[p] = vel
	}
	for i := range vel {
		vel[i] = s.momentum*vel[i] + g[i]
	}

	switch p.Kind() {
	case ad.Scalar:
		p.SetValue(ad.ScalarOf(p.Value().Scalar() - s.lr*vel[0]))
	default:
		d := flatten(p.Value())
		for i := range d {
			d[i] -= s.lr * vel[i]
		}
	}
	p.ZeroGrad()
}

// ZeroGrad clears gradients on all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float32 { return s.lr }

// SetLR updates the learning rate; useful for schedules.
func (s *SGD) SetLR(lr float32) { s.lr = lr }

// flatten exposes a payload's elements as a flat slice. Vector and matrix
// payloads share storage with the node, so writes update the parameter in
// place; scalars are copied out.
func flatten(p ad.Payload) []float32 {
	switch p.Kind() {
	case ad.Vector:
		return p.Vec()
	case ad.Matrix:
		return p.Mat().Data()
	default:
		return []float32{p.Scalar()}
	}
}
