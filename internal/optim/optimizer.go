// Package optim implements the gradient-descent update rules used to train
// networks registered in an nn.Network.
//
// This package provides:
//   - Optimizer interface: Step over a registry, learning rate, name
//   - SGD: plain stochastic gradient descent
//   - Momentum: SGD with an exponential moving average of gradients
//   - Adam: Adaptive Moment Estimation with gradient clipping
//
// Every optimizer walks the registry in handle order, updates each
// trainable parameter that carries a gradient in place, then resets that
// gradient to zeros. Non-trainable parameters are never read or written.
// Per-parameter state is kept by registry position and lives as long as the
// optimizer value.
//
// Example usage:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//
//	for batches.Next() {
//	    loss := lossFn(model.Forward(net, x), labels)
//	    loss.Backward()
//	    opt.Step(net)
//	}
package optim

import (
	"errors"
	"fmt"

	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/tensor"
)

// ErrUnknownOptimizer is returned by New for an unrecognised name.
var ErrUnknownOptimizer = errors.New("unknown optimizer")

// Optimizer updates the trainable parameters of a registry from their
// accumulated gradients.
type Optimizer interface {
	// Step applies one update to every trainable parameter of net that has
	// a gradient, then zeroes those gradients.
	Step(net *nn.Network)

	// LR returns the learning rate.
	LR() float32

	// Name returns the optimizer name as accepted by New.
	Name() string
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float32 // Learning rate
}

// Names lists the optimizers New accepts.
var Names = []string{"sgd", "momentum", "adam"}

// New builds an optimizer by name with default hyperparameters and the
// given learning rate.
func New(name string, lr float32) (Optimizer, error) {
	switch name {
	case "sgd":
		return NewSGD(Config{LR: lr}), nil
	case "momentum":
		return NewMomentum(MomentumConfig{LR: lr}), nil
	case "adam":
		return NewAdam(AdamConfig{LR: lr}), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownOptimizer, name, Names)
	}
}

// forEachTrainable calls update for every trainable parameter with a
// gradient, passing its registry index, and zeroes the gradient afterwards.
func forEachTrainable(net *nn.Network, update func(i int, p *autodiff.Variable)) {
	for i, p := range net.Parameters() {
		if !p.RequiresGrad() || p.Grad() == nil {
			continue
		}
		update(i, p)
		p.ZeroGrad()
	}
}

// stateSlots holds one accumulator per registry position.
type stateSlots []*tensor.Tensor

// get returns the zero-initialised accumulator for index i shaped like
// shape. The slice grows on demand; a slot whose parameter changed shape is
// reset.
func (s *stateSlots) get(i int, shape tensor.Shape) *tensor.Tensor {
	if i >= len(*s) {
		*s = append(*s, make([]*tensor.Tensor, i+1-len(*s))...)
	}
	slot := (*s)[i]
	if slot == nil || !slot.Shape().Equal(shape) {
		slot = tensor.Zeros(shape)
		(*s)[i] = slot
	}
	return slot
}
