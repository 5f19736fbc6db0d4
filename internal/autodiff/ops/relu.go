package ops

import "github.com/born-ml/mlp/internal/tensor"

// ReLUOp represents a ReLU activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
type ReLUOp struct {
	input *tensor.Tensor
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(input *tensor.Tensor) *ReLUOp {
	return &ReLUOp{input: input}
}

// Name returns "relu".
func (op *ReLUOp) Name() string { return "relu" }

// Backward masks the output gradient with input > 0.
func (op *ReLUOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{tensor.Mul(outputGrad, tensor.ReLUMask(op.input))}
}
