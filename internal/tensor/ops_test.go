package tensor

import (
	"testing"

	"github.com/born-ml/mlp/internal/parallel"
	"github.com/stretchr/testify/assert"
)

func TestMatMul(t *testing.T) {
	a := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	b := MustFromSlice([]float32{7, 8, 9, 10, 11, 12}, Shape{3, 2})

	c := MatMul(a, b)
	assert.Equal(t, Shape{2, 2}, c.Shape())
	assert.Equal(t, []float32{58, 64, 139, 154}, c.Data())
}

func TestMatMulTrans(t *testing.T) {
	a := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	b := MustFromSlice([]float32{7, 8, 9, 10, 11, 12}, Shape{3, 2})

	// aᵀ is [3,2], bᵀ is [2,3]
	got := MatMulTrans(a, b, true, true)
	want := MatMul(Transpose(a), Transpose(b))
	assert.Equal(t, want.Shape(), got.Shape())
	assert.Equal(t, want.Data(), got.Data())

	got = MatMulTrans(a, a, false, true)
	assert.Equal(t, []float32{14, 32, 32, 77}, got.Data())

	assert.Panics(t, func() { MatMul(a, a) })
}

func TestAddScaledAndScaleInPlace(t *testing.T) {
	x := MustFromSlice([]float32{1, 2, 3}, Shape{3})
	x.AddScaled(-0.5, MustFromSlice([]float32{2, 2, 2}, Shape{3}))
	assert.Equal(t, []float32{0, 1, 2}, x.Data())

	x.ScaleInPlace(3)
	assert.Equal(t, []float32{0, 3, 6}, x.Data())

	assert.Panics(t, func() { x.AddScaled(1, Zeros(Shape{2})) })
}

func TestBroadcastBinary(t *testing.T) {
	m := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	row := MustFromSlice([]float32{10, 20, 30}, Shape{1, 3})
	col := MustFromSlice([]float32{100, 200}, Shape{2, 1})

	assert.Equal(t, []float32{11, 22, 33, 14, 25, 36}, Add(m, row).Data())
	assert.Equal(t, []float32{101, 102, 103, 204, 205, 206}, Add(m, col).Data())
	assert.Equal(t, []float32{-9, -18, -27, -6, -15, -24}, Sub(m, row).Data())
	assert.Equal(t, []float32{2, 4, 6, 8, 10, 12}, Mul(m, Scalar(2)).Data())
	assert.Equal(t, []float32{0.5, 1, 1.5, 2, 2.5, 3}, Div(m, Scalar(2)).Data())

	assert.Panics(t, func() { Add(m, Zeros(Shape{2, 2})) })
}

func TestBroadcastBinary_Parallel(t *testing.T) {
	defer SetParallelism(kernelConfig)
	SetParallelism(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2})

	a := Ones(Shape{50, 20})
	b := Full(Shape{1, 20}, 2)
	sum := Add(a, b)
	for _, v := range sum.Data() {
		assert.Equal(t, float32(3), v)
	}
}

func TestUnary(t *testing.T) {
	x := MustFromSlice([]float32{-2, -0.5, 0, 0.5, 4}, Shape{5})

	assert.Equal(t, []float32{0, 0, 0, 0.5, 4}, ReLU(x).Data())
	assert.Equal(t, []float32{0, 0, 0, 1, 1}, ReLUMask(x).Data())
	assert.Equal(t, []float32{-1, -0.5, 0, 0.5, 1}, Clamp(x, -1, 1).Data())
	assert.Equal(t, []float32{4, 0.25, 0, 0.25, 16}, Square(x).Data())
	assert.Equal(t, []float32{2, 0.5, 0, 0.5, 4}, Abs(x).Data())
	assert.Equal(t, []float32{-4, -1, 0, 1, 8}, Scale(x, 2).Data())
	assert.Equal(t, []float32{-1, 0.5, 1, 1.5, 5}, AddScalar(x, 1).Data())
	assert.Equal(t, []float32{0, 1, 2}, Sqrt(MustFromSlice([]float32{0, 1, 4}, Shape{3})).Data())
}

func TestReductions(t *testing.T) {
	m := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	assert.Equal(t, float32(21), SumAll(m))
	assert.Equal(t, float32(21), Sum(m).Item())
	assert.Equal(t, float32(3.5), Mean(m).Item())

	assert.Equal(t, []float32{5, 7, 9}, SumTo(m, Shape{1, 3}).Data())
	assert.Equal(t, []float32{5, 7, 9}, SumTo(m, Shape{3}).Data())
	assert.Equal(t, []float32{6, 15}, SumTo(m, Shape{2, 1}).Data())
	assert.Equal(t, []float32{21}, SumTo(m, Shape{}).Data())
	assert.Equal(t, m.Data(), SumTo(m, Shape{2, 3}).Data())

	assert.Panics(t, func() { SumTo(m, Shape{2, 2}) })
}

func TestArgMax(t *testing.T) {
	m := MustFromSlice([]float32{
		0.1, 0.7, 0.2,
		5, 5, 1,
		-3, -2, -1,
	}, Shape{3, 3})
	assert.Equal(t, []int{1, 0, 2}, ArgMax(m))
}

func TestLogSoftmax(t *testing.T) {
	logits := MustFromSlice([]float32{1, 2, 3, 1000, 1000, 1000}, Shape{2, 3})
	out := LogSoftmax(logits)

	probs := Exp(out)
	for r := 0; r < 2; r++ {
		var sum float32
		for c := 0; c < 3; c++ {
			sum += probs.At(r, c)
		}
		assert.InDelta(t, 1.0, sum, 1e-5)
	}
	// Uniform logits -> log(1/3).
	assert.InDelta(t, -1.0986123, out.At(1, 0), 1e-5)
	assert.InDelta(t, -0.4076059, out.At(0, 2), 1e-5)

	sm := Softmax(logits)
	assert.InDelta(t, 0.0900306, sm.At(0, 0), 1e-5)
}

func TestManipulation(t *testing.T) {
	m := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{3, 2})

	tr := Transpose(m)
	assert.Equal(t, Shape{2, 3}, tr.Shape())
	assert.Equal(t, []float32{1, 3, 5, 2, 4, 6}, tr.Data())

	sel := IndexSelect(m, []int{2, 0})
	assert.Equal(t, Shape{2, 2}, sel.Shape())
	assert.Equal(t, []float32{5, 6, 1, 2}, sel.Data())
	assert.Panics(t, func() { IndexSelect(m, []int{3}) })

	nar := Narrow(m, 1, 2)
	assert.Equal(t, Shape{2, 2}, nar.Shape())
	assert.Equal(t, []float32{3, 4, 5, 6}, nar.Data())
	assert.Panics(t, func() { Narrow(m, 2, 2) })
}

func BenchmarkMatMul(b *testing.B) {
	x := Randn(Shape{128, 784}, nil)
	w := Randn(Shape{784, 128}, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MatMul(x, w)
	}
}
