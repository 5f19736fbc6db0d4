// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Example:
//
//	import (
//	    "github.com/born-ml/mlp/autodiff"
//	    "github.com/born-ml/mlp/tensor"
//	)
//
//	w := autodiff.NewVariable(tensor.Randn(tensor.Shape{3, 1}, nil), true)
//	loss := autodiff.Mean(autodiff.MatMul(autodiff.Constant(x), w))
//	loss.Backward()
//	w.Grad() // d(loss)/dw
package autodiff

import (
	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/tensor"
)

// Variable is a tensor tracked by the autodiff graph.
type Variable = autodiff.Variable

// GradientTape orders the graph behind one output for the backward pass.
type GradientTape = autodiff.GradientTape

// NewVariable wraps value as a leaf variable.
func NewVariable(value *tensor.Tensor, requiresGrad bool) *Variable {
	return autodiff.NewVariable(value, requiresGrad)
}

// Constant wraps value as a leaf that never receives a gradient.
func Constant(value *tensor.Tensor) *Variable {
	return autodiff.Constant(value)
}

// NewGradientTape orders the graph that produced root.
func NewGradientTape(root *Variable) *GradientTape {
	return autodiff.NewGradientTape(root)
}

// MatMul returns a @ b.
func MatMul(a, b *Variable) *Variable { return autodiff.MatMul(a, b) }

// Add returns a + b with broadcasting.
func Add(a, b *Variable) *Variable { return autodiff.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub(a, b *Variable) *Variable { return autodiff.Sub(a, b) }

// Mul returns a * b element-wise with broadcasting.
func Mul(a, b *Variable) *Variable { return autodiff.Mul(a, b) }

// ReLU returns max(0, x).
func ReLU(x *Variable) *Variable { return autodiff.ReLU(x) }

// LogSoftmax returns log(softmax(x)) over the last dimension.
func LogSoftmax(x *Variable) *Variable { return autodiff.LogSoftmax(x) }

// Mean returns the mean of every element.
func Mean(x *Variable) *Variable { return autodiff.Mean(x) }

// NLLLoss returns the mean negative log-likelihood of targets.
func NLLLoss(logProbs *Variable, targets []int32) *Variable {
	return autodiff.NLLLoss(logProbs, targets)
}
