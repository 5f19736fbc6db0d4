package ops

import "github.com/born-ml/mlp/internal/tensor"

// LogSoftmaxOp represents log(softmax(x)) over the last dimension.
//
// Backward pass, with y = LogSoftmax(x) and g the output gradient:
//
//	grad_x = g - softmax(x) * sum(g, row)
//
// softmax(x) is recovered as exp(y), so only the output is kept.
type LogSoftmaxOp struct {
	output *tensor.Tensor
}

// NewLogSoftmaxOp creates a new LogSoftmaxOp.
func NewLogSoftmaxOp(output *tensor.Tensor) *LogSoftmaxOp {
	return &LogSoftmaxOp{output: output}
}

// Name returns "log_softmax".
func (op *LogSoftmaxOp) Name() string { return "log_softmax" }

// Backward computes the input gradient for log-softmax.
func (op *LogSoftmaxOp) Backward(outputGrad *tensor.Tensor) []*tensor.Tensor {
	rows, cols := op.output.Dim(0), op.output.Dim(1)
	softmax := tensor.Exp(op.output)
	grad := tensor.ZerosLike(outputGrad)

	g, s, dst := outputGrad.Data(), softmax.Data(), grad.Data()
	for r := 0; r < rows; r++ {
		base := r * cols
		var rowSum float32
		for c := 0; c < cols; c++ {
			rowSum += g[base+c]
		}
		for c := 0; c < cols; c++ {
			dst[base+c] = g[base+c] - s[base+c]*rowSum
		}
	}
	return []*tensor.Tensor{grad}
}
