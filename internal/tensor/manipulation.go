package tensor

import "fmt"

// Transpose swaps the two dimensions of a 2-D tensor.
func Transpose(t *Tensor) *Tensor {
	rows, cols := matrixDims(t, "transpose")
	out := Zeros(Shape{cols, rows})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.data[c*rows+r] = t.data[r*cols+c]
		}
	}
	return out
}

// IndexSelect gathers rows (entries along dimension 0) in the given order.
func IndexSelect(t *Tensor, indices []int) *Tensor {
	if len(t.shape) == 0 {
		panic("index_select: scalar tensor has no rows")
	}
	if len(indices) == 0 {
		panic("index_select: empty index list")
	}
	rowSize := len(t.data) / t.shape[0]
	shape := t.shape.Clone()
	shape[0] = len(indices)

	out := Zeros(shape)
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[0] {
			panic(fmt.Sprintf("index_select: index %d out of range [0, %d)", idx, t.shape[0]))
		}
		copy(out.data[i*rowSize:(i+1)*rowSize], t.data[idx*rowSize:(idx+1)*rowSize])
	}
	return out
}

// Narrow returns rows [start, start+length) along dimension 0. The result
// shares storage with t.
func Narrow(t *Tensor, start, length int) *Tensor {
	if len(t.shape) == 0 {
		panic("narrow: scalar tensor has no rows")
	}
	if start < 0 || length <= 0 || start+length > t.shape[0] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for %d rows", start, start+length, t.shape[0]))
	}
	rowSize := len(t.data) / t.shape[0]
	shape := t.shape.Clone()
	shape[0] = length
	return &Tensor{
		shape: shape,
		data:  t.data[start*rowSize : (start+length)*rowSize : (start+length)*rowSize],
	}
}
