package autodiff

import (
	"fmt"

	"github.com/born-ml/mlp/internal/autodiff/ops"
	"github.com/born-ml/mlp/internal/tensor"
)

// MatMul returns a @ b.
func MatMul(a, b *Variable) *Variable {
	out := tensor.MatMul(a.value, b.value)
	return record(out, ops.NewMatMulOp(a.value, b.value), a, b)
}

// Add returns a + b with broadcasting.
func Add(a, b *Variable) *Variable {
	out := tensor.Add(a.value, b.value)
	return record(out, ops.NewAddOp(a.Shape(), b.Shape()), a, b)
}

// Sub returns a - b with broadcasting.
func Sub(a, b *Variable) *Variable {
	out := tensor.Sub(a.value, b.value)
	return record(out, ops.NewSubOp(a.Shape(), b.Shape()), a, b)
}

// Mul returns the element-wise product a * b with broadcasting.
func Mul(a, b *Variable) *Variable {
	out := tensor.Mul(a.value, b.value)
	return record(out, ops.NewMulOp(a.value, b.value), a, b)
}

// Scale returns s * x.
func Scale(x *Variable, s float32) *Variable {
	return record(tensor.Scale(x.value, s), ops.NewScaleOp(s), x)
}

// ReLU returns max(0, x).
func ReLU(x *Variable) *Variable {
	return record(tensor.ReLU(x.value), ops.NewReLUOp(x.value), x)
}

// LogSoftmax returns log(softmax(x)) over the last dimension of a 2-D input.
func LogSoftmax(x *Variable) *Variable {
	out := tensor.LogSoftmax(x.value)
	return record(out, ops.NewLogSoftmaxOp(out), x)
}

// Mean returns the mean of every element as a scalar.
func Mean(x *Variable) *Variable {
	return record(tensor.Mean(x.value), ops.NewMeanOp(x.Shape()), x)
}

// NLLLoss returns the mean negative log-likelihood of targets under the
// row-wise log-probabilities logProbs [batch, classes].
func NLLLoss(logProbs *Variable, targets []int32) *Variable {
	shape := logProbs.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("nll_loss: expected 2D log-probabilities, got shape %v", shape))
	}
	batch, classes := shape[0], shape[1]
	if len(targets) != batch {
		panic(fmt.Sprintf("nll_loss: %d targets for batch of %d", len(targets), batch))
	}

	data := logProbs.value.Data()
	var sum float32
	for i, target := range targets {
		if target < 0 || int(target) >= classes {
			panic(fmt.Sprintf("nll_loss: target %d out of range [0, %d)", target, classes))
		}
		sum -= data[i*classes+int(target)]
	}
	out := tensor.Scalar(sum / float32(batch))
	return record(out, ops.NewNLLLossOp(shape, targets), logProbs)
}

// SmoothL1Loss returns the mean smooth-L1 loss between pred and target,
// which must have the same shape. beta = 0 gives the mean absolute error.
func SmoothL1Loss(pred, target *Variable, beta float32) *Variable {
	if !pred.Shape().Equal(target.Shape()) {
		panic(fmt.Sprintf("smooth_l1_loss: shape mismatch %v vs %v", pred.Shape(), target.Shape()))
	}
	if beta < 0 {
		panic(fmt.Sprintf("smooth_l1_loss: beta must be >= 0, got %g", beta))
	}
	diff := tensor.Sub(pred.value, target.value)
	var sum float32
	for _, d := range diff.Data() {
		sum += ops.SmoothL1(d, beta)
	}
	out := tensor.Scalar(sum / float32(diff.NumElements()))
	return record(out, ops.NewSmoothL1LossOp(diff, beta), pred, target)
}

// MSELoss returns mean((pred - target)²).
func MSELoss(pred, target *Variable) *Variable {
	diff := Sub(pred, target)
	return Mean(Mul(diff, diff))
}
