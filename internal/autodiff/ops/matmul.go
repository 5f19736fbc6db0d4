package ops

import "github.com/born-ml/mlp/internal/tensor"

// MatMulOp represents a matrix multiplication: output = a @ b.
//
// Backward pass:
//   - d(A@B)/dA = outputGrad @ Bᵀ
//   - d(A@B)/dB = Aᵀ @ outputGrad
type MatMulOp struct {
	a, b *tensor.Tensor
}

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp(a, b *tensor.Tensor) *MatMulOp {
	return &MatMulOp{a: a, b: b}
}

// Name returns "matmul".
func (op *MatMulOp) Name() string { return "matmul" }

// Backward computes input gradients for matrix multiplication.
func (op *MatMulOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{
		tensor.MatMulTrans(outputGrad, op.b, false, true),
		tensor.MatMulTrans(op.a, outputGrad, true, false),
	}
}
