package nn_test

import (
	"errors"
	"testing"

	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossEntropyLoss(t *testing.T) {
	tests := []struct {
		name   string
		logits []float32
		labels []int32
		want   float32
	}{
		{"uniform", []float32{0, 0, 0, 0}, []int32{2}, 1.3862944},
		{"confident", []float32{10, 0, 0, 0}, []int32{0}, 0.0001362},
		{"batch", []float32{1, 2, 3, 4, 1, 1, 1, 1}, []int32{3, 0}, (0.4401897 + 1.3862944) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := len(tt.labels)
			logits := autodiff.Constant(tensor.MustFromSlice(tt.logits, tensor.Shape{rows, 4}))
			loss := nn.CrossEntropyLoss(logits, tt.labels)
			assert.InDelta(t, tt.want, loss.Item(), 1e-5)
		})
	}
}

func TestSmoothL1Loss_OneHot(t *testing.T) {
	logits := autodiff.NewVariable(tensor.MustFromSlice([]float32{0.5, 0, 0, 2}, tensor.Shape{2, 2}), true)

	loss := nn.SmoothL1Loss(logits, []int32{0, 1})
	// |0.5-1| + |0| + |0| + |2-1| over 4
	assert.InDelta(t, 0.375, loss.Item(), 1e-6)

	loss.Backward()
	assert.Equal(t, []float32{-0.25, 0, 0, 0.25}, logits.Grad().Data())
}

func TestMSELoss_OneHot(t *testing.T) {
	logits := autodiff.Constant(tensor.MustFromSlice([]float32{1, 0, 0, 3}, tensor.Shape{2, 2}))
	loss := nn.MSELoss(logits, []int32{0, 0})
	// 0 + 0 + 1 + 9 over 4
	assert.InDelta(t, 2.5, loss.Item(), 1e-6)
}

func TestLossByName(t *testing.T) {
	for _, name := range nn.LossNames() {
		fn, err := nn.LossByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, fn)
	}

	_, err := nn.LossByName("hinge")
	assert.True(t, errors.Is(err, nn.ErrUnknownLoss))
	assert.Equal(t, []string{"cross-entropy", "mse", "smooth-l1"}, nn.LossNames())
}

func TestOneHot(t *testing.T) {
	got := nn.OneHot([]int32{2, 0}, 3)
	assert.Equal(t, tensor.Shape{2, 3}, got.Shape())
	assert.Equal(t, []float32{0, 0, 1, 1, 0, 0}, got.Data())

	assert.Panics(t, func() { nn.OneHot([]int32{3}, 3) })
}

func TestAccuracy(t *testing.T) {
	logits := tensor.MustFromSlice([]float32{
		0.1, 0.9, 0.0,
		0.8, 0.1, 0.1,
		0.3, 0.3, 0.4,
		0.5, 0.5, 0.0,
	}, tensor.Shape{4, 3})

	assert.Equal(t, 3, nn.CorrectCount(logits, []int32{1, 0, 2, 1}))
	assert.InDelta(t, 0.75, nn.Accuracy(logits, []int32{1, 0, 2, 1}), 1e-9)
	// Ties resolve to the lowest index.
	assert.InDelta(t, 1.0, nn.Accuracy(logits, []int32{1, 0, 2, 0}), 1e-9)

	assert.Panics(t, func() { nn.Accuracy(logits, []int32{0}) })
}
