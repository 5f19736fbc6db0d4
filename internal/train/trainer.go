// Package train runs the mini-batch training loop over an nn.Network.
//
// Each epoch draws a fresh batch order, and every batch goes through
// forward, loss, backward and exactly one optimizer step. The loop is
// synchronous; parallelism lives inside the tensor kernels.
package train

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/data"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
)

// Common errors.
var (
	ErrEmptyDataset   = errors.New("dataset has no samples")
	ErrNothingToTrain = errors.New("loss does not depend on any trainable parameter")
)

// Config controls a training run.
type Config struct {
	Epochs    int         // Passes over the dataset (default: 10)
	BatchSize int         // Samples per batch (default: 128)
	Shuffle   bool        // Permute rows every epoch
	Loss      nn.LossFunc // Objective (default: nn.CrossEntropyLoss)
	Rng       *rand.Rand  // Shuffle source; nil uses the process-wide source
	Logger    *log.Logger // Epoch progress; nil logs to stdout
}

// DefaultConfig returns the configuration of the reference MNIST run:
// 10 shuffled epochs of 128-sample batches under cross-entropy.
func DefaultConfig() Config {
	return Config{
		Epochs:    10,
		BatchSize: 128,
		Shuffle:   true,
		Loss:      nn.CrossEntropyLoss,
	}
}

func (c *Config) setDefaults() {
	if c.Epochs == 0 {
		c.Epochs = 10
	}
	if c.BatchSize == 0 {
		c.BatchSize = 128
	}
	if c.Loss == nil {
		c.Loss = nn.CrossEntropyLoss
	}
	if c.Logger == nil {
		c.Logger = log.New(os.Stdout, "", 0)
	}
}

// EpochStats summarises one epoch.
type EpochStats struct {
	Epoch    int           // Zero-based epoch index
	LossSum  float32       // Sum of the per-batch mean losses
	MeanLoss float32       // LossSum / Batches
	Batches  int           // Optimizer steps taken
	Samples  int           // Rows seen
	Duration time.Duration // Wall time of the epoch
}

// Train fits the parameters in net by running model over ds.
//
// After every epoch it logs "Epoch: N Error: X" with X the mean batch loss.
// The returned slice holds one entry per completed epoch.
func Train(net *nn.Network, model nn.Module, ds *data.Dataset, opt optim.Optimizer, cfg Config) ([]EpochStats, error) {
	cfg.setDefaults()
	if ds.NumSamples() == 0 {
		return nil, ErrEmptyDataset
	}

	history := make([]EpochStats, 0, cfg.Epochs)
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		stats, err := runEpoch(net, model, ds, opt, &cfg)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		stats.Epoch = epoch
		history = append(history, stats)

		cfg.Logger.Printf("Epoch: %d Error: %.6f", epoch, stats.MeanLoss)
	}
	return history, nil
}

func runEpoch(net *nn.Network, model nn.Module, ds *data.Dataset, opt optim.Optimizer, cfg *Config) (EpochStats, error) {
	start := time.Now()
	batches, err := data.NewBatchIterator(ds, cfg.BatchSize, cfg.Shuffle, cfg.Rng)
	if err != nil {
		return EpochStats{}, err
	}

	var stats EpochStats
	for batches.Next() {
		b := batches.Batch()

		logits := model.Forward(net, autodiff.Constant(b.Images))
		loss := cfg.Loss(logits, b.Labels)
		if !loss.RequiresGrad() {
			return stats, ErrNothingToTrain
		}

		stats.LossSum += loss.Item()
		loss.Backward()
		opt.Step(net)

		stats.Batches++
		stats.Samples += b.Size()
	}

	stats.MeanLoss = stats.LossSum / float32(stats.Batches)
	stats.Duration = time.Since(start)
	return stats, nil
}

// Result is the outcome of Evaluate.
type Result struct {
	Accuracy float64 // Fraction of correctly classified samples
	Loss     float32 // Sample-weighted mean loss
	Correct  int
	Samples  int
}

// Evaluate runs model over ds against a frozen copy of net, so no graph is
// built and net is left untouched. A nil loss uses nn.CrossEntropyLoss.
func Evaluate(net *nn.Network, model nn.Module, ds *data.Dataset, batchSize int, loss nn.LossFunc) (Result, error) {
	if ds.NumSamples() == 0 {
		return Result{}, ErrEmptyDataset
	}
	if loss == nil {
		loss = nn.CrossEntropyLoss
	}

	frozen := nn.NewNetwork(nil)
	frozen.CopyFrom(net)

	batches, err := data.NewBatchIterator(ds, batchSize, false, nil)
	if err != nil {
		return Result{}, err
	}

	var res Result
	var lossSum float64
	for batches.Next() {
		b := batches.Batch()
		logits := model.Forward(frozen, autodiff.Constant(b.Images))

		lossSum += float64(loss(logits, b.Labels).Item()) * float64(b.Size())
		res.Correct += nn.CorrectCount(logits.Value(), b.Labels)
		res.Samples += b.Size()
	}

	res.Accuracy = float64(res.Correct) / float64(res.Samples)
	res.Loss = float32(lossSum / float64(res.Samples))
	return res, nil
}
