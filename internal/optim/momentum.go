package optim

import (
	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/nn"
)

// Momentum implements SGD with an exponential moving average of gradients.
//
// Update rule:
//
//	velocity = beta * velocity + (1 - beta) * gradient
//	param = param - lr * velocity
//
// The velocity of each parameter persists across steps.
type Momentum struct {
	lr       float32
	beta     float32
	velocity stateSlots
}

// MomentumConfig holds configuration for the Momentum optimizer.
type MomentumConfig struct {
	LR   float32 // Learning rate (default: 0.01)
	Beta float32 // Averaging coefficient (default: 0.9, range: [0, 1))
}

// NewMomentum creates a new Momentum optimizer.
func NewMomentum(config MomentumConfig) *Momentum {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Beta == 0 {
		config.Beta = 0.9
	}
	return &Momentum{lr: config.LR, beta: config.Beta}
}

// Step performs a single optimization step.
func (m *Momentum) Step(net *nn.Network) {
	forEachTrainable(net, func(i int, p *autodiff.Variable) {
		v := m.velocity.get(i, p.Shape())
		v.ScaleInPlace(m.beta)
		v.AddScaled(1-m.beta, p.Grad())
		p.Value().AddScaled(-m.lr, v)
	})
}

// LR returns the learning rate.
func (m *Momentum) LR() float32 {
	return m.lr
}

// Name returns "momentum".
func (m *Momentum) Name() string {
	return "momentum"
}
