// Package autodiff implements reverse-mode automatic differentiation over
// internal/tensor.
//
// A Variable wraps a tensor value, an accumulated gradient and a
// requires-grad flag. Functions in this package (MatMul, Add, ReLU, ...)
// compute their result eagerly and, when any input requires a gradient,
// link the result to its inputs through an ops.Operation. Backward on a
// scalar result orders that graph on a GradientTape and walks it in reverse,
// accumulating gradients into the leaf variables.
//
//	w := autodiff.NewVariable(tensor.Randn(tensor.Shape{3, 1}, nil), true)
//	x := autodiff.Constant(input)
//	loss := autodiff.Mean(autodiff.MatMul(x, w))
//	loss.Backward()
//	w.Grad() // d(loss)/dw
package autodiff

import (
	"fmt"

	"github.com/born-ml/mlp/internal/autodiff/ops"
	"github.com/born-ml/mlp/internal/tensor"
)

// Variable is a tensor tracked by the autodiff graph.
type Variable struct {
	value        *tensor.Tensor
	grad         *tensor.Tensor
	requiresGrad bool

	op     ops.Operation // nil for leaves
	inputs []*Variable
}

// NewVariable wraps value as a leaf variable.
func NewVariable(value *tensor.Tensor, requiresGrad bool) *Variable {
	return &Variable{value: value, requiresGrad: requiresGrad}
}

// Constant wraps value as a leaf that never receives a gradient.
func Constant(value *tensor.Tensor) *Variable {
	return NewVariable(value, false)
}

// Value returns the tensor held by the variable.
func (v *Variable) Value() *tensor.Tensor {
	return v.value
}

// Shape returns the shape of the value.
func (v *Variable) Shape() tensor.Shape {
	return v.value.Shape()
}

// Item returns the value of a one-element variable.
func (v *Variable) Item() float32 {
	return v.value.Item()
}

// RequiresGrad reports whether gradients flow into this variable.
func (v *Variable) RequiresGrad() bool {
	return v.requiresGrad
}

// IsLeaf reports whether the variable was created directly rather than as
// the result of a recorded operation.
func (v *Variable) IsLeaf() bool {
	return v.op == nil
}

// Grad returns the accumulated gradient, or nil if none was computed yet.
func (v *Variable) Grad() *tensor.Tensor {
	return v.grad
}

// SetGrad replaces the accumulated gradient.
func (v *Variable) SetGrad(grad *tensor.Tensor) {
	if grad != nil && !grad.Shape().Equal(v.value.Shape()) {
		panic(fmt.Sprintf("autodiff: gradient shape %v does not match value shape %v", grad.Shape(), v.value.Shape()))
	}
	v.grad = grad
}

// ZeroGrad resets an existing gradient to all zeros in place.
func (v *Variable) ZeroGrad() {
	if v.grad != nil {
		v.grad.Zero()
	}
}

// ClearGrad drops the gradient entirely.
func (v *Variable) ClearGrad() {
	v.grad = nil
}

// SetValue replaces the value, keeping the requires-grad flag. The gradient
// is dropped when the shape changes.
func (v *Variable) SetValue(value *tensor.Tensor) {
	if !value.Shape().Equal(v.value.Shape()) {
		v.grad = nil
	}
	v.value = value
}

// Detach returns a constant sharing this variable's value.
func (v *Variable) Detach() *Variable {
	return Constant(v.value)
}

// Backward computes d(v)/d(leaf) for every leaf that requires a gradient
// and adds it to the leaf's accumulated gradient. v must hold one element.
func (v *Variable) Backward() {
	if v.value.NumElements() != 1 {
		panic(fmt.Sprintf("autodiff: backward requires a scalar output, got shape %v", v.value.Shape()))
	}
	if !v.requiresGrad {
		panic("autodiff: backward on a variable that does not require grad")
	}
	NewGradientTape(v).Backward(tensor.Ones(v.value.Shape()))
}

func (v *Variable) accumulateGrad(grad *tensor.Tensor) {
	if v.grad == nil {
		v.grad = grad.Clone()
		return
	}
	v.grad.AddScaled(1, grad)
}

// record links result to its inputs through op when any input requires a
// gradient. Otherwise result is a constant and op is discarded.
func record(value *tensor.Tensor, op ops.Operation, inputs ...*Variable) *Variable {
	out := &Variable{value: value}
	for _, in := range inputs {
		if in.requiresGrad {
			out.requiresGrad = true
			out.op = op
			out.inputs = inputs
			break
		}
	}
	return out
}
