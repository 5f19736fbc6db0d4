package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
func MatMul(a, b *Tensor) *Tensor {
	return MatMulTrans(a, b, false, false)
}

// MatMulTrans computes op(a) @ op(b) where op transposes its operand when
// the matching flag is set. Both operands must be 2-D.
//
// The backward pass of a matmul needs grad @ B^T and A^T @ grad; passing the
// flags through to SGEMM avoids materialising the transposes.
func MatMulTrans(a, b *Tensor, transA, transB bool) *Tensor {
	if len(a.shape) != 2 || len(b.shape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(a.shape), len(b.shape)))
	}

	m, k := a.shape[0], a.shape[1]
	if transA {
		m, k = k, m
	}
	kAlt, n := b.shape[0], b.shape[1]
	if transB {
		kAlt, n = n, kAlt
	}
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch %v%s @ %v%s", a.shape, transSuffix(transA), b.shape, transSuffix(transB)))
	}

	result := Zeros(Shape{m, n})
	blas32.Gemm(
		blasTranspose(transA), blasTranspose(transB),
		1, general(a), general(b),
		0, general(result),
	)
	return result
}

// AddScaled performs t += alpha * x in place. Shapes must match.
func (t *Tensor) AddScaled(alpha float32, x *Tensor) {
	if !t.shape.Equal(x.shape) {
		panic(fmt.Sprintf("tensor: AddScaled shape mismatch %v vs %v", t.shape, x.shape))
	}
	blas32.Axpy(alpha, vector(x), vector(t))
}

// ScaleInPlace performs t *= alpha.
func (t *Tensor) ScaleInPlace(alpha float32) {
	blas32.Scal(alpha, vector(t))
}

func general(t *Tensor) blas32.General {
	return blas32.General{
		Rows:   t.shape[0],
		Cols:   t.shape[1],
		Data:   t.data,
		Stride: t.shape[1],
	}
}

func vector(t *Tensor) blas32.Vector {
	return blas32.Vector{N: len(t.data), Data: t.data, Inc: 1}
}

func blasTranspose(trans bool) blas.Transpose {
	if trans {
		return blas.Trans
	}
	return blas.NoTrans
}

func transSuffix(trans bool) string {
	if trans {
		return "ᵀ"
	}
	return ""
}
