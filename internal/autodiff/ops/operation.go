// Package ops defines the differentiable operations recorded by autodiff.
//
// Each operation keeps whatever it needs from the forward pass and turns the
// gradient of its output into one gradient per input, in input order:
//   - AddOp, SubOp, MulOp: element-wise with broadcasting
//   - ScaleOp: multiplication by a constant
//   - MatMulOp: d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad
//   - ReLUOp: d(ReLU(x))/dx = 1 if x > 0, else 0
//   - LogSoftmaxOp, NLLLossOp, SmoothL1LossOp, MeanOp: loss building blocks
package ops

import "github.com/born-ml/mlp/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Name identifies the operation in panics and debugging output.
	Name() string

	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per input; the caller drops gradients for inputs
	// that do not require them.
	Backward(outputGrad *tensor.Tensor) []*tensor.Tensor
}
