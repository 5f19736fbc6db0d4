// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the parameter registry and network modules.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/nn"
//	    "github.com/born-ml/mlp/autodiff"
//	)
//
//	net := nn.NewNetwork(nil)
//	model := nn.NewSequential(
//	    nn.NewLinear(net, 784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(net, 128, 10),
//	)
//	logits := model.Forward(net, autodiff.Constant(images))
//	loss := nn.CrossEntropyLoss(logits, labels)
package nn

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/tensor"
)

// Network is an append-only registry of parameters addressed by Handle.
type Network = nn.Network

// Handle identifies a parameter by its registration index.
type Handle = nn.Handle

// Module is the interface for every network component.
type Module = nn.Module

// Linear is a fully connected layer: y = x @ W + b.
type Linear = nn.Linear

// ReLU is the max(0, x) activation.
type ReLU = nn.ReLU

// Sequential chains modules.
type Sequential = nn.Sequential

// LossFunc maps logits and class labels to a scalar loss.
type LossFunc = nn.LossFunc

// Errors.
var (
	ErrInvalidHandle = nn.ErrInvalidHandle
	ErrUnknownLoss   = nn.ErrUnknownLoss
)

// NewNetwork creates an empty registry drawing from rng (nil = process-wide).
func NewNetwork(rng *rand.Rand) *Network {
	return nn.NewNetwork(rng)
}

// NewLinear registers a new fully connected layer in net.
func NewLinear(net *Network, inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(net, inFeatures, outFeatures)
}

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// NewSequential creates a Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// CrossEntropyLoss is softmax cross-entropy over integer labels.
func CrossEntropyLoss(logits *autodiff.Variable, labels []int32) *autodiff.Variable {
	return nn.CrossEntropyLoss(logits, labels)
}

// LossByName returns the loss registered under name.
func LossByName(name string) (LossFunc, error) {
	return nn.LossByName(name)
}

// Accuracy returns the fraction of rows whose arg-max equals the label.
func Accuracy(logits *tensor.Tensor, labels []int32) float64 {
	return nn.Accuracy(logits, labels)
}
