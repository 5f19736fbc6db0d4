package tensor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, []int{12, 4, 1}, s.ComputeStrides())
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.True(t, s.Equal(s.Clone()))
	assert.False(t, s.Equal(Shape{2, 3}))

	require.NoError(t, s.Validate())
	assert.ErrorIs(t, Shape{2, 0}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{-1}.Validate(), ErrInvalidShape)
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{"same", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{"column", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"row", Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"rank", Shape{5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"incompatible", Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.broadcast, broadcast)
		})
	}
}

func TestCreation(t *testing.T) {
	_, err := New(Shape{2, 0})
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = FromSlice([]float32{1, 2, 3}, Shape{2, 2})
	require.ErrorIs(t, err, ErrSizeMismatch)

	x := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	assert.Equal(t, float32(6), x.At(1, 2))
	assert.Equal(t, float32(2), x.At(0, 1))
	assert.Equal(t, 3, x.Dim(1))

	assert.Equal(t, []float32{1, 1}, Ones(Shape{2}).Data())
	assert.Equal(t, []float32{7, 7, 7}, Full(Shape{3}, 7).Data())
	assert.Equal(t, float32(2.5), Scalar(2.5).Item())

	assert.Panics(t, func() { Zeros(Shape{0}) })
}

func TestRandn_Seeded(t *testing.T) {
	a := Randn(Shape{64, 8}, rand.New(rand.NewPCG(1, 2)))
	b := Randn(Shape{64, 8}, rand.New(rand.NewPCG(1, 2)))
	assert.True(t, a.Equal(b), "same seed must produce the same values")

	mean := SumAll(a) / float32(a.NumElements())
	assert.InDelta(t, 0, mean, 0.2)
}

func TestClone_IsDeep(t *testing.T) {
	x := MustFromSlice([]float32{1, 2}, Shape{2})
	c := x.Clone()
	c.Data()[0] = 9
	assert.Equal(t, float32(1), x.Data()[0])
}

func TestCopyFrom(t *testing.T) {
	dst := Zeros(Shape{2, 2})
	require.NoError(t, dst.CopyFrom(Ones(Shape{2, 2})))
	assert.Equal(t, []float32{1, 1, 1, 1}, dst.Data())
	assert.ErrorIs(t, dst.CopyFrom(Ones(Shape{4})), ErrShapeMismatch)
}

func TestReshape_SharesStorage(t *testing.T) {
	x := MustFromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
	r := x.Reshape(Shape{4})
	r.Data()[3] = 10
	assert.Equal(t, float32(10), x.At(1, 1))
	assert.Panics(t, func() { x.Reshape(Shape{3}) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "Tensor[2][1 2]", MustFromSlice([]float32{1, 2}, Shape{2}).String())
	assert.Contains(t, Zeros(Shape{100}).String(), "(84 more)")
}
