// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the gradient-descent update rules.
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/optim"
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	loss.Backward()
//	opt.Step(net) // updates every trainable parameter and zeroes its gradient
package optim

import "github.com/born-ml/mlp/internal/optim"

// Optimizer is the common interface of all update rules.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// ErrUnknownOptimizer is returned by New for an unrecognised name.
var ErrUnknownOptimizer = optim.ErrUnknownOptimizer

// SGD (Stochastic Gradient Descent)

// SGD represents plain stochastic gradient descent.
type SGD = optim.SGD

// NewSGD creates a new SGD optimizer.
func NewSGD(config Config) *SGD {
	return optim.NewSGD(config)
}

// Momentum

// Momentum represents SGD with persistent velocity.
type Momentum = optim.Momentum

// MomentumConfig contains configuration for the Momentum optimizer.
type MomentumConfig = optim.MomentumConfig

// NewMomentum creates a new Momentum optimizer.
func NewMomentum(config MomentumConfig) *Momentum {
	return optim.NewMomentum(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// BiasCorrection selects how Adam rescales its moments.
type BiasCorrection = optim.BiasCorrection

// Bias correction modes.
const (
	BiasCorrectionStandard = optim.BiasCorrectionStandard
	BiasCorrectionLegacy   = optim.BiasCorrectionLegacy
)

// NewAdam creates a new Adam optimizer.
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// New builds an optimizer by name: "sgd", "momentum" or "adam".
func New(name string, lr float32) (Optimizer, error) {
	return optim.New(name, lr)
}
