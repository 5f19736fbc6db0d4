package ops

import "github.com/born-ml/mlp/internal/tensor"

// MeanOp represents the mean of every element: output = sum(x) / N.
//
// Backward pass:
//   - grad_x = outputGrad / N, broadcast to x's shape
type MeanOp struct {
	shape tensor.Shape
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(shape tensor.Shape) *MeanOp {
	return &MeanOp{shape: shape.Clone()}
}

// Name returns "mean".
func (op *MeanOp) Name() string { return "mean" }

// Backward spreads the output gradient evenly across the input.
func (op *MeanOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{tensor.Full(op.shape, outputGrad.Item()/float32(op.shape.NumElements()))}
}
