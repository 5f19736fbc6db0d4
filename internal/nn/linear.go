package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/tensor"
)

// Parameter names used by Linear.
const (
	WeightParam = "weight"
	BiasParam   = "bias"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features]
//   - y is the output with shape [batch_size, out_features]
//
// Both parameters are registered trainable and drawn from the standard
// normal distribution.
type Linear struct {
	inFeatures  int
	outFeatures int
	params      map[string]Handle
}

// NewLinear registers the weight and bias of a new layer in net.
func NewLinear(net *Network, inFeatures, outFeatures int) *Linear {
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		params: map[string]Handle{
			WeightParam: net.Register(tensor.Shape{inFeatures, outFeatures}, true),
			BiasParam:   net.Register(tensor.Shape{1, outFeatures}, true),
		},
	}
}

// Forward computes x @ W + b.
func (l *Linear) Forward(net *Network, input *autodiff.Variable) *autodiff.Variable {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [batch, features], got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, shape[1]))
	}

	out := autodiff.MatMul(input, net.Get(l.params[WeightParam]))
	return autodiff.Add(out, net.Get(l.params[BiasParam]))
}

// Param returns the handle registered under name.
func (l *Linear) Param(name string) (Handle, bool) {
	h, ok := l.params[name]
	return h, ok
}

// Weight returns the weight handle.
func (l *Linear) Weight() Handle {
	return l.params[WeightParam]
}

// Bias returns the bias handle.
func (l *Linear) Bias() Handle {
	return l.params[BiasParam]
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
