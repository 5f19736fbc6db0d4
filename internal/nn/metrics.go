package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/tensor"
)

// Accuracy returns the fraction of rows of logits [batch, classes] whose
// arg-max equals the label.
func Accuracy(logits *tensor.Tensor, labels []int32) float64 {
	return float64(CorrectCount(logits, labels)) / float64(len(labels))
}

// CorrectCount returns the number of rows whose arg-max equals the label.
func CorrectCount(logits *tensor.Tensor, labels []int32) int {
	predicted := tensor.ArgMax(logits)
	if len(predicted) != len(labels) {
		panic(fmt.Sprintf("nn: %d predictions for %d labels", len(predicted), len(labels)))
	}
	correct := 0
	for i, p := range predicted {
		if int32(p) == labels[i] {
			correct++
		}
	}
	return correct
}
