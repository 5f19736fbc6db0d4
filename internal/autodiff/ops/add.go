package ops

import "github.com/born-ml/mlp/internal/tensor"

// AddOp represents an element-wise addition: output = a + b.
//
// Backward pass:
//   - grad_a = outputGrad, summed over the dimensions a was broadcast along
//   - grad_b = outputGrad, summed over the dimensions b was broadcast along
type AddOp struct {
	aShape tensor.Shape
	bShape tensor.Shape
}

// NewAddOp creates a new AddOp.
func NewAddOp(aShape, bShape tensor.Shape) *AddOp {
	return &AddOp{aShape: aShape.Clone(), bShape: bShape.Clone()}
}

// Name returns "add".
func (op *AddOp) Name() string { return "add" }

// Backward computes input gradients for addition.
func (op *AddOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{
		tensor.SumTo(outputGrad, op.aShape),
		tensor.SumTo(outputGrad, op.bShape),
	}
}
