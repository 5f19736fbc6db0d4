package optim

import (
	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/nn"
)

// SGD implements plain Stochastic Gradient Descent.
//
// Update rule:
//
//	param = param - lr * gradient
type SGD struct {
	lr float32
}

// NewSGD creates a new SGD optimizer. A zero LR defaults to 0.01.
func NewSGD(config Config) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step performs a single optimization step.
func (s *SGD) Step(net *nn.Network) {
	forEachTrainable(net, func(_ int, p *autodiff.Variable) {
		p.Value().AddScaled(-s.lr, p.Grad())
	})
}

// LR returns the learning rate.
func (s *SGD) LR() float32 {
	return s.lr
}

// Name returns "sgd".
func (s *SGD) Name() string {
	return "sgd"
}
