// Copyright 2025 Gradix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim is the public API for optimizers over graph parameters.
package optim

import (
	"github.com/gradix-ml/gradix/internal/ad"
	"github.com/gradix-ml/gradix/internal/optim"
)

// SGD is stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds SGD hyperparameters.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameter nodes.
func NewSGD(params []*ad.Node, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
