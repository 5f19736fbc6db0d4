package data

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/tensor"
)

// ErrInvalidBatchSize is returned for a batch size below 1.
var ErrInvalidBatchSize = errors.New("batch size must be positive")

// Batch is one mini-batch of a Dataset.
type Batch struct {
	Images  *tensor.Tensor // [batch_size, features]
	Labels  []int32        // [batch_size]
	Indices []int          // Dataset rows the batch was gathered from
}

// Size returns the number of samples in the batch.
func (b Batch) Size() int {
	return len(b.Labels)
}

// NumBatches returns ceil(rows / batchSize).
func NumBatches(rows, batchSize int) int {
	if batchSize <= 0 {
		return 0
	}
	return (rows + batchSize - 1) / batchSize
}

// BatchIterator walks a dataset in mini-batches. The row order is fixed at
// construction; an iterator is consumed once.
//
//	it, err := data.NewBatchIterator(ds, 128, true, rng)
//	for it.Next() {
//	    b := it.Batch()
//	    ...
//	}
type BatchIterator struct {
	ds        *Dataset
	order     []int
	batchSize int
	pos       int
	current   Batch
}

// NewBatchIterator prepares a pass over ds. With shuffle set the rows are
// visited in a uniformly random permutation drawn from rng (nil uses the
// process-wide source); otherwise in order. The final batch holds the
// remainder and may be smaller than batchSize.
func NewBatchIterator(ds *Dataset, batchSize int, shuffle bool, rng *rand.Rand) (*BatchIterator, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}

	n := ds.NumSamples()
	var order []int
	switch {
	case !shuffle:
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	case rng != nil:
		order = rng.Perm(n)
	default:
		order = rand.Perm(n) //nolint:gosec // data order, not security-critical
	}

	return &BatchIterator{ds: ds, order: order, batchSize: batchSize}, nil
}

// NumBatches returns the number of batches the iterator yields in total.
func (it *BatchIterator) NumBatches() int {
	return NumBatches(len(it.order), it.batchSize)
}

// Next advances to the next batch and reports whether there is one.
func (it *BatchIterator) Next() bool {
	if it.pos >= len(it.order) {
		return false
	}
	end := min(it.pos+it.batchSize, len(it.order))
	indices := it.order[it.pos:end:end]
	it.pos = end

	labels := make([]int32, len(indices))
	for i, idx := range indices {
		labels[i] = it.ds.Labels[idx]
	}
	it.current = Batch{
		Images:  tensor.IndexSelect(it.ds.Images, indices),
		Labels:  labels,
		Indices: indices,
	}
	return true
}

// Batch returns the batch produced by the last successful Next.
func (it *BatchIterator) Batch() Batch {
	return it.current
}
