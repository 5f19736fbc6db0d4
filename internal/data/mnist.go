// Package data loads classification datasets and splits them into
// mini-batches.
//
// A Dataset keeps every image as one row of a [N, features] tensor and the
// class labels as int32, the layout the nn losses expect.
package data

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/born-ml/mlp/internal/tensor"
)

// MNIST geometry.
const (
	ImageSize   = 28
	ImagePixels = ImageSize * ImageSize
	NumClasses  = 10
)

// ErrEmptyDataset is returned when a dataset would hold no samples.
var ErrEmptyDataset = errors.New("dataset is empty")

// Dataset is a set of flattened images and their labels.
type Dataset struct {
	Images *tensor.Tensor // [num_samples, features], values in [0, 1]
	Labels []int32        // [num_samples]
}

// NewDataset checks that images and labels agree and wraps them.
func NewDataset(images *tensor.Tensor, labels []int32) (*Dataset, error) {
	if len(images.Shape()) != 2 {
		return nil, fmt.Errorf("%w: images must be 2D, got %v", tensor.ErrInvalidShape, images.Shape())
	}
	if images.Dim(0) != len(labels) {
		return nil, fmt.Errorf("image count (%d) != label count (%d)", images.Dim(0), len(labels))
	}
	return &Dataset{Images: images, Labels: labels}, nil
}

// NumSamples returns the total number of samples in the dataset.
func (d *Dataset) NumSamples() int {
	return len(d.Labels)
}

// NumFeatures returns the width of one image row.
func (d *Dataset) NumFeatures() int {
	return d.Images.Dim(1)
}

// Limit returns a view of the first n samples. n <= 0 or n beyond the
// dataset size returns d unchanged.
func (d *Dataset) Limit(n int) *Dataset {
	if n <= 0 || n >= d.NumSamples() {
		return d
	}
	return &Dataset{
		Images: tensor.Narrow(d.Images, 0, n),
		Labels: d.Labels[:n],
	}
}

// LoadMNIST loads MNIST from the official IDX binary files.
//
// Parameters:
//   - dataDir: Directory containing the MNIST files
//   - train: If true, load the training set (60,000 samples), else the test set (10,000 samples)
//   - maxSamples: Maximum number of samples to load (0 = load all)
//
// Expected files in dataDir (a ".gz" variant is used when the plain file
// is missing):
//   - train-images-idx3-ubyte (or t10k-images-idx3-ubyte for test)
//   - train-labels-idx1-ubyte (or t10k-labels-idx1-ubyte for test)
//
// Pixels are scaled from 0-255 to [0, 1].
func LoadMNIST(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	prefix := "t10k"
	if train {
		prefix = "train"
	}
	imageFile := filepath.Join(dataDir, prefix+"-images-idx3-ubyte")
	labelFile := filepath.Join(dataDir, prefix+"-labels-idx1-ubyte")

	raw, err := readIDXImagesFile(imageFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	labelsRaw, err := readIDXLabelsFile(labelFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	if raw.count != len(labelsRaw) {
		return nil, fmt.Errorf("image count (%d) != label count (%d)", raw.count, len(labelsRaw))
	}
	if raw.count == 0 {
		return nil, fmt.Errorf("%s: %w", imageFile, ErrEmptyDataset)
	}

	numSamples := raw.count
	if maxSamples > 0 && numSamples > maxSamples {
		numSamples = maxSamples
	}
	features := raw.rows * raw.cols

	images := tensor.Zeros(tensor.Shape{numSamples, features})
	pixels := images.Data()
	for i := range pixels {
		pixels[i] = float32(raw.pixels[i]) / 255.0
	}

	labels := make([]int32, numSamples)
	for i := range labels {
		labels[i] = int32(labelsRaw[i])
	}

	return &Dataset{Images: images, Labels: labels}, nil
}
