package tensor

import (
	"fmt"

	"github.com/born-ml/mlp/internal/parallel"
	"github.com/chewxy/math32"
)

// SumAll returns the sum of every element.
func SumAll(t *Tensor) float32 {
	var sum float32
	for _, v := range t.data {
		sum += v
	}
	return sum
}

// Sum returns the sum of every element as a scalar tensor.
func Sum(t *Tensor) *Tensor {
	return Scalar(SumAll(t))
}

// Mean returns the mean of every element as a scalar tensor.
func Mean(t *Tensor) *Tensor {
	return Scalar(SumAll(t) / float32(len(t.data)))
}

// SumTo reduces t to target by summing over the dimensions broadcasting
// expanded. It is the adjoint of broadcasting and is used to route gradients
// back to broadcast operands.
//
//	Forward:  a[3,1] + b[3,4] -> c[3,4]
//	Backward: grad_c[3,4] -> SumTo(grad_c, [3,1])
func SumTo(t *Tensor, target Shape) *Tensor {
	if t.shape.Equal(target) {
		return t.Clone()
	}
	if len(target) == 0 || target.NumElements() == 1 {
		return Full(target, SumAll(t))
	}
	if full, _, err := BroadcastShapes(target, t.shape); err != nil || !full.Equal(t.shape) {
		panic(fmt.Sprintf("tensor: cannot reduce %v to %v", t.shape, target))
	}

	out := Zeros(target)
	srcStrides := t.shape.ComputeStrides()
	dstStrides := broadcastStrides(target, t.shape)
	for i, v := range t.data {
		di, rem := 0, i
		for d, stride := range srcStrides {
			coord := rem / stride
			rem %= stride
			di += coord * dstStrides[d]
		}
		out.data[di] += v
	}
	return out
}

// ArgMax returns the column index of the largest value in every row of a
// 2-D tensor. Ties resolve to the lowest index.
func ArgMax(t *Tensor) []int {
	rows, cols := matrixDims(t, "argmax")
	out := make([]int, rows)
	for r := 0; r < rows; r++ {
		row := t.data[r*cols : (r+1)*cols]
		best := 0
		for c := 1; c < cols; c++ {
			if row[c] > row[best] {
				best = c
			}
		}
		out[r] = best
	}
	return out
}

// LogSoftmax computes log(softmax(x)) over the last dimension of a 2-D
// tensor using the log-sum-exp trick.
func LogSoftmax(t *Tensor) *Tensor {
	rows, cols := matrixDims(t, "log_softmax")
	out := ZerosLike(t)
	parallel.For(rows, func(r int) {
		row := t.data[r*cols : (r+1)*cols]
		dst := out.data[r*cols : (r+1)*cols]

		maxVal := math32.Inf(-1)
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
		var sumExp float32
		for _, v := range row {
			sumExp += math32.Exp(v - maxVal)
		}
		logSum := maxVal + math32.Log(sumExp)
		for c, v := range row {
			dst[c] = v - logSum
		}
	}, rowConfig(cols))
	return out
}

// Softmax computes softmax over the last dimension of a 2-D tensor.
func Softmax(t *Tensor) *Tensor {
	return Exp(LogSoftmax(t))
}

func matrixDims(t *Tensor, op string) (rows, cols int) {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("%s: expected 2D tensor, got shape %v", op, t.shape))
	}
	return t.shape[0], t.shape[1]
}

// rowConfig scales the minimum chunk so a goroutine gets roughly as many
// elements as the element-wise kernels hand out.
func rowConfig(cols int) parallel.Config {
	cfg := kernelConfig
	cfg.MinChunkSize = max(1, cfg.MinChunkSize/max(cols, 1))
	return cfg
}
