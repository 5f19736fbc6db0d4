package ops

import "github.com/born-ml/mlp/internal/tensor"

// MulOp represents an element-wise multiplication: output = a * b.
//
// Backward pass:
//   - grad_a = outputGrad * b
//   - grad_b = outputGrad * a
type MulOp struct {
	a, b *tensor.Tensor
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b *tensor.Tensor) *MulOp {
	return &MulOp{a: a, b: b}
}

// Name returns "mul".
func (op *MulOp) Name() string { return "mul" }

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{
		tensor.SumTo(tensor.Mul(outputGrad, op.b), op.a.Shape()),
		tensor.SumTo(tensor.Mul(outputGrad, op.a), op.b.Shape()),
	}
}
