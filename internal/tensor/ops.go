package tensor

import (
	"fmt"

	"github.com/born-ml/mlp/internal/parallel"
	"github.com/chewxy/math32"
)

var kernelConfig = parallel.DefaultConfig()

// SetParallelism replaces the worker configuration used by the kernels.
func SetParallelism(cfg parallel.Config) {
	kernelConfig = cfg
}

// Add returns a + b with broadcasting.
func Add(a, b *Tensor) *Tensor {
	return broadcastBinary(a, b, "add", func(x, y float32) float32 { return x + y })
}

// Sub returns a - b with broadcasting.
func Sub(a, b *Tensor) *Tensor {
	return broadcastBinary(a, b, "sub", func(x, y float32) float32 { return x - y })
}

// Mul returns the element-wise product a * b with broadcasting.
func Mul(a, b *Tensor) *Tensor {
	return broadcastBinary(a, b, "mul", func(x, y float32) float32 { return x * y })
}

// Div returns the element-wise quotient a / b with broadcasting.
func Div(a, b *Tensor) *Tensor {
	return broadcastBinary(a, b, "div", func(x, y float32) float32 { return x / y })
}

// Scale returns s * t.
func Scale(t *Tensor, s float32) *Tensor {
	return Apply(t, func(x float32) float32 { return s * x })
}

// AddScalar returns t + s.
func AddScalar(t *Tensor, s float32) *Tensor {
	return Apply(t, func(x float32) float32 { return x + s })
}

// Square returns t².
func Square(t *Tensor) *Tensor {
	return Apply(t, func(x float32) float32 { return x * x })
}

// Sqrt returns the element-wise square root.
func Sqrt(t *Tensor) *Tensor {
	return Apply(t, math32.Sqrt)
}

// Abs returns the element-wise absolute value.
func Abs(t *Tensor) *Tensor {
	return Apply(t, math32.Abs)
}

// Exp returns the element-wise exponential.
func Exp(t *Tensor) *Tensor {
	return Apply(t, math32.Exp)
}

// Clamp limits every element to [lo, hi]. NaN passes through unchanged.
func Clamp(t *Tensor, lo, hi float32) *Tensor {
	return Apply(t, func(x float32) float32 {
		switch {
		case x < lo:
			return lo
		case x > hi:
			return hi
		default:
			return x
		}
	})
}

// ReLU returns max(0, t).
func ReLU(t *Tensor) *Tensor {
	return Apply(t, func(x float32) float32 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// ReLUMask returns 1 where t > 0 and 0 elsewhere.
func ReLUMask(t *Tensor) *Tensor {
	return Apply(t, func(x float32) float32 {
		if x > 0 {
			return 1
		}
		return 0
	})
}

// Apply maps f over every element into a new tensor.
func Apply(t *Tensor, f func(float32) float32) *Tensor {
	out := ZerosLike(t)
	parallel.ForRange(len(t.data), func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = f(t.data[i])
		}
	}, kernelConfig)
	return out
}

func broadcastBinary(a, b *Tensor, name string, f func(x, y float32) float32) *Tensor {
	if a.shape.Equal(b.shape) {
		out := ZerosLike(a)
		parallel.ForRange(len(out.data), func(start, end int) {
			for i := start; i < end; i++ {
				out.data[i] = f(a.data[i], b.data[i])
			}
		}, kernelConfig)
		return out
	}

	outShape, _, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	out := Zeros(outShape)
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)

	parallel.ForRange(len(out.data), func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi, rem := 0, 0, i
			for d, stride := range outStrides {
				coord := rem / stride
				rem %= stride
				ai += coord * aStrides[d]
				bi += coord * bStrides[d]
			}
			out.data[i] = f(a.data[ai], b.data[bi])
		}
	}, kernelConfig)
	return out
}

// broadcastStrides returns strides of s laid out against out, with 0 on
// every broadcast dimension.
func broadcastStrides(s, out Shape) []int {
	strides := make([]int, len(out))
	src := s.ComputeStrides()
	offset := len(out) - len(s)
	for d := range s {
		if s[d] != 1 {
			strides[d+offset] = src[d]
		}
	}
	return strides
}
