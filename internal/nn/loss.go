package nn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/tensor"
)

// ErrUnknownLoss is returned by LossByName for an unregistered name.
var ErrUnknownLoss = errors.New("unknown loss function")

// LossFunc maps logits [batch, classes] and integer class labels to a
// scalar loss.
type LossFunc func(logits *autodiff.Variable, labels []int32) *autodiff.Variable

// CrossEntropyLoss computes the mean negative log-likelihood of the labels
// under softmax(logits), via log-softmax for numerical stability.
func CrossEntropyLoss(logits *autodiff.Variable, labels []int32) *autodiff.Variable {
	return autodiff.NLLLoss(autodiff.LogSoftmax(logits), labels)
}

// SmoothL1Loss compares logits with the one-hot encoding of labels using
// smooth-L1 with beta 0, i.e. the mean absolute error.
func SmoothL1Loss(logits *autodiff.Variable, labels []int32) *autodiff.Variable {
	target := autodiff.Constant(OneHot(labels, logits.Shape()[1]))
	return autodiff.SmoothL1Loss(logits, target, 0)
}

// MSELoss computes mean((logits - onehot(labels))²).
func MSELoss(logits *autodiff.Variable, labels []int32) *autodiff.Variable {
	target := autodiff.Constant(OneHot(labels, logits.Shape()[1]))
	return autodiff.MSELoss(logits, target)
}

var losses = map[string]LossFunc{
	"cross-entropy": CrossEntropyLoss,
	"smooth-l1":     SmoothL1Loss,
	"mse":           MSELoss,
}

// LossByName returns the loss registered under name.
func LossByName(name string) (LossFunc, error) {
	fn, ok := losses[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownLoss, name, LossNames())
	}
	return fn, nil
}

// LossNames returns the registered loss names in sorted order.
func LossNames() []string {
	names := make([]string, 0, len(losses))
	for name := range losses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OneHot encodes labels as a [len(labels), classes] matrix.
// It panics if a label is outside [0, classes).
func OneHot(labels []int32, classes int) *tensor.Tensor {
	out := tensor.Zeros(tensor.Shape{len(labels), classes})
	data := out.Data()
	for i, label := range labels {
		if label < 0 || int(label) >= classes {
			panic(fmt.Sprintf("nn: label %d out of range [0, %d)", label, classes))
		}
		data[i*classes+int(label)] = 1
	}
	return out
}
