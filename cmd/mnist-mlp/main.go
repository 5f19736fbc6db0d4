// Command mnist-mlp trains a two-layer perceptron on MNIST and reports its
// accuracy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/born-ml/mlp/internal/data"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/internal/tensor"
	"github.com/born-ml/mlp/internal/train"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("mnist-mlp %s\n", version)
		return
	}

	// Parse command line arguments
	dataDir := flag.String("data", "./mnist_data", "Directory containing MNIST data files")
	maxSamples := flag.Int("samples", 0, "Max samples to load (0 = all)")
	epochs := flag.Int("epochs", 10, "Number of training epochs")
	batchSize := flag.Int("batch", 128, "Batch size for training")
	lr := flag.Float64("lr", 0.001, "Learning rate")
	optName := flag.String("optimizer", "adam", "Optimizer: "+strings.Join(optim.Names, ", "))
	lossName := flag.String("loss", "cross-entropy", "Loss: "+strings.Join(nn.LossNames(), ", "))
	legacyAdam := flag.Bool("legacy-adam-correction", false, "Divide Adam moments by (1-beta)^2 instead of 1-beta^t")
	seed := flag.Uint64("seed", 0, "Random seed for initialization and shuffling (0 = random)")
	workers := flag.Int("workers", 0, "Kernel worker goroutines (0 = physical cores, 1 = sequential)")
	evalTest := flag.Bool("test", false, "Also report accuracy on the t10k test set")
	useSynthetic := flag.Bool("synthetic", false, "Use synthetic data (for testing without MNIST files)")
	flag.Parse()

	fmt.Println("Born MLP - MNIST Classification")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("CPU: %s\n", parallel.Describe())

	if *workers > 0 {
		cfg := parallel.DefaultConfig()
		cfg.NumWorkers = *workers
		cfg.Enabled = *workers > 1
		tensor.SetParallelism(cfg)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed)) //nolint:gosec // reproducible training, not security-critical
	}

	trainData := loadData(*dataDir, true, *maxSamples, *useSynthetic, rng)
	fmt.Printf("   Train: %d samples\n", trainData.NumSamples())

	// Create model
	net := nn.NewNetwork(rng)
	model := NewMNISTNet(net)
	fmt.Printf("\nModel: %d -> %d -> ReLU -> %d (%d trainable parameters)\n",
		data.ImagePixels, HiddenUnits, data.NumClasses, net.NumParameters())
	if err := net.ParamsInfo(os.Stdout); err != nil {
		log.Fatalf("Failed to print parameters: %v", err)
	}

	lossFn, err := nn.LossByName(*lossName)
	if err != nil {
		log.Fatalf("Invalid -loss: %v", err)
	}
	opt, err := newOptimizer(*optName, float32(*lr), *legacyAdam)
	if err != nil {
		log.Fatalf("Invalid -optimizer: %v", err)
	}

	fmt.Printf("\nTraining Configuration:\n")
	fmt.Printf("   Optimizer: %s (lr=%g)\n", opt.Name(), opt.LR())
	fmt.Printf("   Loss: %s\n", *lossName)
	fmt.Printf("   Batch Size: %d (%d batches per epoch)\n", *batchSize, data.NumBatches(trainData.NumSamples(), *batchSize))
	fmt.Printf("   Epochs: %d\n\n", *epochs)

	cfg := train.Config{
		Epochs:    *epochs,
		BatchSize: *batchSize,
		Shuffle:   true,
		Loss:      lossFn,
		Rng:       rng,
		Logger:    log.New(os.Stdout, "", 0),
	}
	history, err := train.Train(net, model, trainData, opt, cfg)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	var elapsed float64
	for _, s := range history {
		elapsed += s.Duration.Seconds()
	}
	fmt.Printf("\nTraining complete in %.1fs\n", elapsed)

	res, err := train.Evaluate(net, model, trainData, 1024, lossFn)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}
	fmt.Printf("Accuracy: %.4f\n", res.Accuracy)

	if *evalTest && !*useSynthetic {
		testData := loadData(*dataDir, false, 0, false, nil)
		res, err := train.Evaluate(net, model, testData, 1024, lossFn)
		if err != nil {
			log.Fatalf("Evaluation failed: %v", err)
		}
		fmt.Printf("Test Accuracy: %.4f (loss %.4f, %d samples)\n", res.Accuracy, res.Loss, res.Samples)
	}
}

// newOptimizer builds the optimizer selected on the command line.
func newOptimizer(name string, lr float32, legacyAdam bool) (optim.Optimizer, error) {
	if name == "adam" && legacyAdam {
		return optim.NewAdam(optim.AdamConfig{LR: lr, BiasCorrection: optim.BiasCorrectionLegacy}), nil
	}
	return optim.New(name, lr)
}

func loadData(dir string, trainSet bool, maxSamples int, synthetic bool, rng *rand.Rand) *data.Dataset {
	if synthetic {
		fmt.Println("\nUsing synthetic data (embedded test patterns)...")
		return data.Synthetic(100, rng).Limit(maxSamples)
	}

	fmt.Printf("\nLoading MNIST data from: %s\n", dir)
	ds, err := data.LoadMNIST(dir, trainSet, maxSamples)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println("\nError: MNIST data files not found!")
			fmt.Println("\nExpected in the data directory (optionally gzipped):")
			fmt.Println("  - train-images-idx3-ubyte")
			fmt.Println("  - train-labels-idx1-ubyte")
			fmt.Println("  - t10k-images-idx3-ubyte")
			fmt.Println("  - t10k-labels-idx1-ubyte")
			fmt.Println("\nOr run with -synthetic to use embedded test data.")
			os.Exit(1)
		}
		log.Fatalf("Failed to load MNIST: %v", err)
	}
	return ds
}
