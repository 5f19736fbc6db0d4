package nn

import "github.com/born-ml/mlp/internal/autodiff"

// ReLU is a Rectified Linear Unit activation module: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies max(0, x). ReLU has no parameters; net is unused.
func (r *ReLU) Forward(_ *Network, input *autodiff.Variable) *autodiff.Variable {
	return autodiff.ReLU(input)
}
