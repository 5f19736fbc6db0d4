package ops

import "github.com/born-ml/mlp/internal/tensor"

// NLLLossOp represents the mean negative log-likelihood of the target
// classes: output = -mean(logProbs[i, targets[i]]).
//
// Backward pass:
//   - grad[i, targets[i]] = -outputGrad / batch, zero elsewhere
type NLLLossOp struct {
	shape   tensor.Shape
	targets []int32
}

// NewNLLLossOp creates a new NLLLossOp. targets must already be validated.
func NewNLLLossOp(shape tensor.Shape, targets []int32) *NLLLossOp {
	return &NLLLossOp{shape: shape.Clone(), targets: targets}
}

// Name returns "nll_loss".
func (op *NLLLossOp) Name() string { return "nll_loss" }

// Backward scatters the scaled output gradient onto the target positions.
func (op *NLLLossOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	batch, classes := op.shape[0], op.shape[1]
	grad := tensor.Zeros(op.shape)
	scale := -outputGrad.Item() / float32(batch)

	data := grad.Data()
	for i, target := range op.targets {
		data[i*classes+int(target)] = scale
	}
	return []*tensor.Tensor{grad}
}
