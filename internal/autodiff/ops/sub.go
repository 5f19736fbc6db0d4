package ops

import "github.com/born-ml/mlp/internal/tensor"

// SubOp represents an element-wise subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct {
	aShape tensor.Shape
	bShape tensor.Shape
}

// NewSubOp creates a new SubOp.
func NewSubOp(aShape, bShape tensor.Shape) *SubOp {
	return &SubOp{aShape: aShape.Clone(), bShape: bShape.Clone()}
}

// Name returns "sub".
func (op *SubOp) Name() string { return "sub" }

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	gradB := tensor.SumTo(outputGrad, op.bShape)
	gradB.ScaleInPlace(-1)
	return []*tensor.Tensor{
		tensor.SumTo(outputGrad, op.aShape),
		gradB,
	}
}
