package main

import (
	"fmt"

	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/data"
	"github.com/born-ml/mlp/internal/nn"
)

// HiddenUnits is the width of the hidden layer.
const HiddenUnits = 128

// MNISTNet is a fully-connected network for MNIST classification.
//
// Architecture:
//   - Input: 784 neurons (28×28 flattened image)
//   - Hidden: 128 neurons with ReLU activation
//   - Output: 10 neurons (logits for 10 digit classes)
type MNISTNet struct {
	fc1  *nn.Linear // 784 → 128
	relu *nn.ReLU
	fc2  *nn.Linear // 128 → 10
}

// NewMNISTNet registers the network's parameters in net.
func NewMNISTNet(net *nn.Network) *MNISTNet {
	return &MNISTNet{
		fc1:  nn.NewLinear(net, data.ImagePixels, HiddenUnits),
		relu: nn.NewReLU(),
		fc2:  nn.NewLinear(net, HiddenUnits, data.NumClasses),
	}
}

// Forward maps a batch of flattened images [batch_size, 784] to logits
// [batch_size, 10]. No softmax is applied; the loss handles it.
func (m *MNISTNet) Forward(net *nn.Network, input *autodiff.Variable) *autodiff.Variable {
	shape := input.Shape()
	if len(shape) != 2 || shape[1] != data.ImagePixels {
		panic(fmt.Sprintf("MNISTNet: input must have shape [batch_size, %d], got %v", data.ImagePixels, shape))
	}

	x := m.fc1.Forward(net, input)
	x = m.relu.Forward(net, x)
	return m.fc2.Forward(net, x)
}
