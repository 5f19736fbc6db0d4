package data

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/tensor"
)

// Synthetic creates a small MNIST-shaped dataset for running the pipeline
// without the real files.
//
// Each digit d is a bright band of 8 rows starting at row 2d, so the
// classes are linearly separable. Samples cycle through the digits; when
// rng is non-nil every pixel gets uniform noise in [0, 0.1).
func Synthetic(samplesPerClass int, rng *rand.Rand) *Dataset {
	if samplesPerClass <= 0 {
		samplesPerClass = 1
	}
	numSamples := samplesPerClass * NumClasses
	images := tensor.Zeros(tensor.Shape{numSamples, ImagePixels})
	labels := make([]int32, numSamples)
	pixels := images.Data()

	for i := 0; i < numSamples; i++ {
		digit := i % NumClasses
		labels[i] = int32(digit)
		row := pixels[i*ImagePixels : (i+1)*ImagePixels]

		if rng != nil {
			for j := range row {
				row[j] = 0.1 * rng.Float32()
			}
		}

		// This is NOT realistic MNIST data, just for testing the pipeline
		startRow := digit * 2 // 0, 2, 4, ..., 18
		for r := startRow; r < startRow+8 && r < ImageSize; r++ {
			for c := 5; c < 23; c++ {
				row[r*ImageSize+c] = 0.8
			}
		}
	}

	return &Dataset{Images: images, Labels: labels}
}
