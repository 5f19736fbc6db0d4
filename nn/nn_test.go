// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/mlp/autodiff"
	"github.com/born-ml/mlp/nn"
	"github.com/born-ml/mlp/optim"
	"github.com/born-ml/mlp/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI_TrainingStep drives one step through the public packages.
func TestPublicAPI_TrainingStep(t *testing.T) {
	net := nn.NewNetwork(rand.New(rand.NewPCG(1, 2)))
	model := nn.NewSequential(nn.NewLinear(net, 4, 8), nn.NewReLU(), nn.NewLinear(net, 8, 3))

	x := autodiff.Constant(tensor.Randn(tensor.Shape{5, 4}, rand.New(rand.NewPCG(3, 4))))
	labels := []int32{0, 1, 2, 1, 0}

	lossFn, err := nn.LossByName("cross-entropy")
	require.NoError(t, err)

	before := tensor.MatMul(x.Value(), net.Get(0).Value()).Clone()
	loss := lossFn(model.Forward(net, x), labels)
	loss.Backward()

	opt, err := optim.New("sgd", 0.1)
	require.NoError(t, err)
	opt.Step(net)

	after := tensor.MatMul(x.Value(), net.Get(0).Value())
	assert.False(t, before.Equal(after))

	acc := nn.Accuracy(model.Forward(net, x).Value(), labels)
	assert.True(t, acc >= 0 && acc <= 1)
}
