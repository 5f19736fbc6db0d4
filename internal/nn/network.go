// Package nn implements the parameter registry and the neural network
// modules built on it.
//
// This package provides:
//   - Network: ordered registry of parameters addressed by Handle
//   - Module interface: Forward(net, input) for every component
//   - Linear: fully connected layer
//   - ReLU and Sequential
//   - Loss functions: CrossEntropyLoss, SmoothL1Loss, MSELoss
//   - Accuracy and OneHot helpers
//
// Modules do not own tensors. They register parameters with a Network at
// construction and keep only the handles, so a frozen copy of the registry
// can drive the same module for evaluation.
package nn

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/tensor"
)

// ErrInvalidHandle is returned by Lookup for a handle the registry did not issue.
var ErrInvalidHandle = errors.New("invalid parameter handle")

// Handle identifies a parameter by its registration index.
// Handles are never recycled.
type Handle int

// Network is an append-only registry of parameters.
//
// Example:
//
//	net := nn.NewNetwork(nil)
//	w := net.Register(tensor.Shape{784, 128}, true)
//	net.Get(w).Value().Shape() // [784 128]
type Network struct {
	params []*autodiff.Variable
	rng    *rand.Rand
}

// NewNetwork creates an empty registry. Registered parameters are drawn
// from rng, or from the process-wide source when rng is nil.
func NewNetwork(rng *rand.Rand) *Network {
	return &Network{rng: rng}
}

// Register allocates a standard-normal tensor of the given shape and
// returns its handle. It panics if the shape is invalid.
func (n *Network) Register(shape tensor.Shape, trainable bool) Handle {
	return n.Push(tensor.Randn(shape, n.rng), trainable)
}

// Push appends an explicit value and returns its handle.
func (n *Network) Push(value *tensor.Tensor, trainable bool) Handle {
	n.params = append(n.params, autodiff.NewVariable(value, trainable))
	return Handle(len(n.params) - 1)
}

// Get returns the parameter for h. It panics if h is out of range.
func (n *Network) Get(h Handle) *autodiff.Variable {
	p, err := n.Lookup(h)
	if err != nil {
		panic(fmt.Sprintf("nn: %v", err))
	}
	return p
}

// Lookup returns the parameter for h, or ErrInvalidHandle.
func (n *Network) Lookup(h Handle) (*autodiff.Variable, error) {
	if h < 0 || int(h) >= len(n.params) {
		return nil, fmt.Errorf("%w: %d (registry holds %d)", ErrInvalidHandle, h, len(n.params))
	}
	return n.params[h], nil
}

// Set replaces the value at h. The trainable flag is kept and any
// accumulated gradient is dropped.
func (n *Network) Set(h Handle, value *tensor.Tensor) {
	p := n.Get(h)
	n.params[h] = autodiff.NewVariable(value, p.RequiresGrad())
}

// Size returns the number of registered parameters.
func (n *Network) Size() int {
	return len(n.params)
}

// Parameters returns the registry in handle order. The slice is shared;
// callers must not append to it.
func (n *Network) Parameters() []*autodiff.Variable {
	return n.params
}

// CopyFrom replaces the registry contents with detached clones of src's
// values. None of the copies are trainable, so a module run against the
// copy builds no graph. Handles issued by src stay valid.
func (n *Network) CopyFrom(src *Network) {
	params := make([]*autodiff.Variable, len(src.params))
	for i, p := range src.params {
		params[i] = autodiff.Constant(p.Value().Clone())
	}
	n.params = params
}

// ZeroGrad resets every existing gradient to zeros.
func (n *Network) ZeroGrad() {
	for _, p := range n.params {
		p.ZeroGrad()
	}
}

// NumParameters returns the number of trainable scalars.
func (n *Network) NumParameters() int {
	total := 0
	for _, p := range n.params {
		if p.RequiresGrad() {
			total += p.Value().NumElements()
		}
	}
	return total
}

// ParamsInfo writes the shape of every trainable parameter, one per line.
func (n *Network) ParamsInfo(w io.Writer) error {
	for i, p := range n.params {
		if !p.RequiresGrad() {
			continue
		}
		if _, err := fmt.Fprintf(w, "param %d: %v\n", i, []int(p.Shape())); err != nil {
			return err
		}
	}
	return nil
}
