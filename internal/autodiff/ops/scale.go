package ops

import "github.com/born-ml/mlp/internal/tensor"

// ScaleOp represents multiplication by a constant: output = s * x.
type ScaleOp struct {
	s float32
}

// NewScaleOp creates a new ScaleOp.
func NewScaleOp(s float32) *ScaleOp {
	return &ScaleOp{s: s}
}

// Name returns "scale".
func (op *ScaleOp) Name() string { return "scale" }

// Backward returns s * outputGrad.
func (op *ScaleOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{tensor.Scale(outputGrad, op.s)}
}
