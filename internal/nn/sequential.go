package nn

import "github.com/born-ml/mlp/internal/autodiff"

// Sequential is a container module that chains modules together.
//
// Example:
//
//	net := nn.NewNetwork(nil)
//	model := nn.NewSequential(
//	    nn.NewLinear(net, 784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(net, 128, 10),
//	)
//	logits := model.Forward(net, x)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(net *Network, input *autodiff.Variable) *autodiff.Variable {
	output := input
	for _, module := range s.modules {
		output = module.Forward(net, output)
	}
	return output
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at index i.
func (s *Sequential) Module(i int) Module {
	return s.modules[i]
}
