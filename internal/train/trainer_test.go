package train_test

import (
	"bytes"
	"errors"
	"log"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/born-ml/mlp/internal/data"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/tensor"
	"github.com/born-ml/mlp/internal/train"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newModel builds a 784 → 16 → 10 perceptron with weights scaled down so
// the first epochs start from moderate logits.
func newModel(seed uint64) (*nn.Network, nn.Module) {
	net := nn.NewNetwork(rand.New(rand.NewPCG(seed, 1)))
	model := nn.NewSequential(
		nn.NewLinear(net, data.ImagePixels, 16),
		nn.NewReLU(),
		nn.NewLinear(net, 16, data.NumClasses),
	)
	for _, p := range net.Parameters() {
		p.Value().ScaleInPlace(0.1)
	}
	return net, model
}

func quietConfig(buf *bytes.Buffer) train.Config {
	cfg := train.DefaultConfig()
	cfg.Rng = rand.New(rand.NewPCG(7, 7))
	cfg.Logger = log.New(buf, "", 0)
	return cfg
}

func TestTrain_LearnsSyntheticDigits(t *testing.T) {
	ds := data.Synthetic(5, rand.New(rand.NewPCG(3, 3)))
	net, model := newModel(1)

	var logs bytes.Buffer
	cfg := quietConfig(&logs)
	cfg.Epochs = 30
	cfg.BatchSize = 16

	history, err := train.Train(net, model, ds, optim.NewAdam(optim.AdamConfig{LR: 0.02}), cfg)
	require.NoError(t, err)
	require.Len(t, history, 30)

	first, last := history[0], history[len(history)-1]
	assert.Less(t, last.MeanLoss, first.MeanLoss)

	res, err := train.Evaluate(net, model, ds, 64, nil)
	require.NoError(t, err)
	assert.Equal(t, ds.NumSamples(), res.Samples)
	assert.GreaterOrEqual(t, res.Accuracy, 0.8)
}

func TestTrain_EpochStats(t *testing.T) {
	ds := data.Synthetic(5, nil) // 50 samples
	net, model := newModel(2)

	var logs bytes.Buffer
	cfg := quietConfig(&logs)
	cfg.Epochs = 2
	cfg.BatchSize = 16

	history, err := train.Train(net, model, ds, optim.NewSGD(optim.Config{LR: 0.01}), cfg)
	require.NoError(t, err)
	require.Len(t, history, 2)

	for i, s := range history {
		assert.Equal(t, i, s.Epoch)
		assert.Equal(t, 4, s.Batches)
		assert.Equal(t, 50, s.Samples)
		assert.InDelta(t, s.LossSum/4, s.MeanLoss, 1e-6)
		assert.GreaterOrEqual(t, int64(s.Duration), int64(0))
	}

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Epoch: 0 Error: "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Epoch: 1 Error: "), lines[1])
}

func TestTrain_LeavesNoStaleGradients(t *testing.T) {
	ds := data.Synthetic(2, nil)
	net, model := newModel(3)

	var logs bytes.Buffer
	cfg := quietConfig(&logs)
	cfg.Epochs = 1

	_, err := train.Train(net, model, ds, optim.NewMomentum(optim.MomentumConfig{}), cfg)
	require.NoError(t, err)

	for _, p := range net.Parameters() {
		require.NotNil(t, p.Grad())
		for _, g := range p.Grad().Data() {
			assert.Zero(t, g)
		}
	}
}

func TestTrain_SmoothL1Loss(t *testing.T) {
	ds := data.Synthetic(2, nil)
	net, model := newModel(4)

	var logs bytes.Buffer
	cfg := quietConfig(&logs)
	cfg.Epochs = 1
	cfg.Loss = nn.SmoothL1Loss

	history, err := train.Train(net, model, ds, optim.NewAdam(optim.AdamConfig{}), cfg)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTrain_Errors(t *testing.T) {
	var logs bytes.Buffer
	cfg := quietConfig(&logs)
	opt := optim.NewSGD(optim.Config{})

	net, model := newModel(5)
	empty := &data.Dataset{Images: tensor.Zeros(tensor.Shape{1, data.ImagePixels}), Labels: nil}
	_, err := train.Train(net, model, empty, opt, cfg)
	assert.True(t, errors.Is(err, train.ErrEmptyDataset))

	cfg.BatchSize = -1
	_, err = train.Train(net, model, data.Synthetic(1, nil), opt, cfg)
	assert.True(t, errors.Is(err, data.ErrInvalidBatchSize))

	// A model whose parameters are all frozen cannot be trained.
	frozen := nn.NewNetwork(nil)
	frozen.CopyFrom(net)
	cfg.BatchSize = 8
	_, err = train.Train(frozen, model, data.Synthetic(1, nil), opt, cfg)
	assert.True(t, errors.Is(err, train.ErrNothingToTrain))
}

func TestEvaluate_DoesNotTouchNetwork(t *testing.T) {
	ds := data.Synthetic(2, nil)
	net, model := newModel(6)

	before := make([]*tensor.Tensor, net.Size())
	for i, p := range net.Parameters() {
		before[i] = p.Value().Clone()
	}

	res, err := train.Evaluate(net, model, ds, 7, nn.CrossEntropyLoss)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Samples)
	assert.InDelta(t, float64(res.Correct)/20, res.Accuracy, 1e-9)
	assert.Positive(t, res.Loss)

	for i, p := range net.Parameters() {
		assert.True(t, before[i].Equal(p.Value()))
		assert.Nil(t, p.Grad())
	}
}
