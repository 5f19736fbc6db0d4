// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense float32 tensors and the CPU kernels used to
// train the MNIST perceptron.
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/tensor"
//
//	x := tensor.MustFromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	w := tensor.Randn(tensor.Shape{2, 3}, nil)
//	y := tensor.MatMul(x, w) // [2, 3]
//
// Matrix products go through gonum's BLAS; element-wise and row-wise
// kernels fan out across CPU cores.
package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/internal/tensor"
)

// Tensor is a dense float32 array stored in row-major order.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Common errors.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrSizeMismatch  = tensor.ErrSizeMismatch
)

// ParallelConfig controls how kernels split work across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a configuration sized to the host CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelism replaces the worker configuration used by the kernels.
func SetParallelism(cfg ParallelConfig) {
	tensor.SetParallelism(cfg)
}

// FromSlice creates a tensor from a Go slice. The data is copied.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// MustFromSlice is FromSlice for literals known to be well-formed.
func MustFromSlice(data []float32, shape Shape) *Tensor {
	return tensor.MustFromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Randn creates a tensor drawn from the standard normal distribution.
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	return tensor.Randn(shape, rng)
}

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
func MatMul(a, b *Tensor) *Tensor {
	return tensor.MatMul(a, b)
}

// ArgMax returns the index of the largest value in every row.
func ArgMax(t *Tensor) []int {
	return tensor.ArgMax(t)
}
