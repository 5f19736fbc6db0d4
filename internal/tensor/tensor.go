// Package tensor implements dense row-major float32 tensors and the CPU
// kernels the autodiff and nn packages are built on.
//
// Kernels allocate their result; the only in-place operations are the
// methods documented as such (Fill, Zero, CopyFrom, AddScaled, ScaleInPlace),
// which optimizers use to update parameters without reallocating.
package tensor

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Common errors.
var (
	ErrInvalidShape  = errors.New("invalid tensor shape")
	ErrShapeMismatch = errors.New("tensor shape mismatch")
	ErrSizeMismatch  = errors.New("data length does not match shape")
)

// Tensor is a dense float32 array stored in row-major order.
type Tensor struct {
	shape Shape
	data  []float32
}

// New allocates a zero-filled tensor.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float32, shape.NumElements()),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != t.NumElements() {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrSizeMismatch, shape, t.NumElements(), len(data))
	}
	copy(t.data, data)
	return t, nil
}

// MustFromSlice is FromSlice for literals known to be well-formed.
func MustFromSlice(data []float32, shape Shape) *Tensor {
	t, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Zeros creates a tensor filled with zeros.
// It panics if the shape is invalid.
func Zeros(shape Shape) *Tensor {
	t, err := New(shape)
	if err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return t
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float32) *Tensor {
	t := Zeros(shape)
	t.Fill(value)
	return t
}

// ZerosLike creates a zero tensor with the shape of t.
func ZerosLike(t *Tensor) *Tensor {
	return Zeros(t.shape)
}

// Randn creates a tensor with values drawn from the standard normal
// distribution. A nil rng uses the process-wide source.
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		if rng != nil {
			t.data[i] = float32(rng.NormFloat64())
		} else {
			t.data[i] = float32(rand.NormFloat64()) //nolint:gosec // weight init, not security-critical
		}
	}
	return t
}

// Scalar creates a 0-dimensional tensor holding v.
func Scalar(v float32) *Tensor {
	return &Tensor{shape: Shape{}, data: []float32{v}}
}

// Shape returns the tensor's shape. The caller must not modify it.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Data returns the underlying storage. Writes are visible to the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Dim returns the size of dimension i.
func (t *Tensor) Dim(i int) int {
	return t.shape[i]
}

// Item returns the single value of a one-element tensor.
func (t *Tensor) Item() float32 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("tensor: Item called on tensor with %d elements", len(t.data)))
	}
	return t.data[0]
}

// At returns the element at the given multi-dimensional index.
func (t *Tensor) At(idx ...int) float32 {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: At expects %d indices, got %d", len(t.shape), len(idx)))
	}
	strides := t.shape.ComputeStrides()
	offset := 0
	for i, v := range idx {
		if v < 0 || v >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of size %d", v, i, t.shape[i]))
		}
		offset += v * strides[i]
	}
	return t.data[offset]
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{shape: t.shape.Clone(), data: data}
}

// Reshape returns a tensor sharing t's storage with a new shape.
func (t *Tensor) Reshape(shape Shape) *Tensor {
	if shape.NumElements() != len(t.data) {
		panic(fmt.Sprintf("tensor: cannot reshape %v (%d elements) to %v", t.shape, len(t.data), shape))
	}
	return &Tensor{shape: shape.Clone(), data: t.data}
}

// Fill sets every element to v in place.
func (t *Tensor) Fill(v float32) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Zero sets every element to 0 in place.
func (t *Tensor) Zero() {
	clear(t.data)
}

// CopyFrom overwrites t's values with src's. Shapes must match.
func (t *Tensor) CopyFrom(src *Tensor) error {
	if !t.shape.Equal(src.shape) {
		return fmt.Errorf("%w: copy %v into %v", ErrShapeMismatch, src.shape, t.shape)
	}
	copy(t.data, src.data)
	return nil
}

// Equal reports whether both tensors have the same shape and values.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String renders small tensors in full and large ones as a summary.
func (t *Tensor) String() string {
	const maxShown = 16
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v[", []int(t.shape))
	for i, v := range t.data {
		if i == maxShown {
			fmt.Fprintf(&sb, " ... (%d more)", len(t.data)-maxShown)
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
