package ops

import (
	"github.com/born-ml/mlp/internal/tensor"
	"github.com/chewxy/math32"
)

// SmoothL1LossOp represents the mean Huber-style loss of pred - target:
//
//	l(d) = 0.5 * d² / beta   if |d| < beta
//	l(d) = |d| - 0.5 * beta  otherwise
//
// With beta = 0 this is the mean absolute error.
//
// Backward pass:
//   - grad_pred = outputGrad/N * (d/beta if |d| < beta, else sign(d))
//   - grad_target = -grad_pred
type SmoothL1LossOp struct {
	diff *tensor.Tensor
	beta float32
}

// NewSmoothL1LossOp creates a new SmoothL1LossOp from the forward difference.
func NewSmoothL1LossOp(diff *tensor.Tensor, beta float32) *SmoothL1LossOp {
	return &SmoothL1LossOp{diff: diff, beta: beta}
}

// Name returns "smooth_l1_loss".
func (op *SmoothL1LossOp) Name() string { return "smooth_l1_loss" }

// Backward computes gradients for both prediction and target.
func (op *SmoothL1LossOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	scale := outputGrad.Item() / float32(op.diff.NumElements())
	gradPred := tensor.Apply(op.diff, func(d float32) float32 {
		if math32.Abs(d) < op.beta {
			return scale * d / op.beta
		}
		switch {
		case d > 0:
			return scale
		case d < 0:
			return -scale
		default:
			return 0
		}
	})
	return []*tensor.Tensor{gradPred, tensor.Scale(gradPred, -1)}
}

// SmoothL1 evaluates the per-element loss; the forward pass shares it.
func SmoothL1(d, beta float32) float32 {
	ad := math32.Abs(d)
	if ad < beta {
		return 0.5 * d * d / beta
	}
	return ad - 0.5*beta
}
