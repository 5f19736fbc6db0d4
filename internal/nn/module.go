package nn

import "github.com/born-ml/mlp/internal/autodiff"

// Module is the interface for every network component.
//
// A module holds handles into a Network rather than tensors, so the same
// module can run against the training registry or a frozen copy of it:
//
//	logits := model.Forward(net, autodiff.Constant(images))
//
//	frozen := nn.NewNetwork(nil)
//	frozen.CopyFrom(net)
//	logits = model.Forward(frozen, autodiff.Constant(images)) // no graph
type Module interface {
	// Forward computes the module output for input using the parameters
	// stored in net.
	Forward(net *Network, input *autodiff.Variable) *autodiff.Variable
}
