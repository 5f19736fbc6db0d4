package optim

import (
	"github.com/born-ml/mlp/internal/autodiff"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/chewxy/math32"
)

// BiasCorrection selects how Adam rescales its moment estimates.
type BiasCorrection int

const (
	// BiasCorrectionStandard divides by 1 - beta^t, t being the step count.
	BiasCorrectionStandard BiasCorrection = iota

	// BiasCorrectionLegacy divides both moments by (1 - beta)², independent
	// of the step count. This is not canonical Adam: it inflates both moments
	// by a constant factor (100 for beta 0.9). Kept to reproduce runs made
	// with that rule.
	BiasCorrectionLegacy
)

// String returns the correction name.
func (b BiasCorrection) String() string {
	switch b {
	case BiasCorrectionStandard:
		return "standard"
	case BiasCorrectionLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Adam implements the Adam (Adaptive Moment Estimation) optimizer with
// element-wise gradient clipping.
//
// Update rule:
//
//	g     = clamp(gradient, -clip, clip)
//	m_t   = beta1 * m_{t-1} + (1-beta1) * g      // First moment
//	v_t   = beta2 * v_{t-1} + (1-beta2) * g²     // Second moment
//	m_hat = m_t / c1                             // Bias correction
//	v_hat = v_t / c2
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// where c1, c2 follow the configured BiasCorrection.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr         float32
	beta1      float32
	beta2      float32
	eps        float32
	clip       float32
	correction BiasCorrection

	t int // Step count for bias correction
	m stateSlots
	v stateSlots
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR             float32        // Learning rate (default: 0.001)
	Betas          [2]float32     // Moment coefficients (default: [0.9, 0.9])
	Eps            float32        // Term for numerical stability (default: 1e-7)
	Clip           float32        // Gradient clipping bound (default: 1)
	BiasCorrection BiasCorrection // Moment rescaling (default: standard)
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.9
//   - Eps: 1e-7
//   - Clip: 1
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.9
	}
	if config.Eps == 0 {
		config.Eps = 1e-7
	}
	if config.Clip == 0 {
		config.Clip = 1
	}

	return &Adam{
		lr:         config.LR,
		beta1:      config.Betas[0],
		beta2:      config.Betas[1],
		eps:        config.Eps,
		clip:       config.Clip,
		correction: config.BiasCorrection,
	}
}

// Step performs a single optimization step using the Adam algorithm.
//
// Parameters with no gradient are skipped.
func (a *Adam) Step(net *nn.Network) {
	a.t++
	c1, c2 := a.corrections()

	forEachTrainable(net, func(i int, p *autodiff.Variable) {
		m := a.m.get(i, p.Shape()).Data()
		v := a.v.get(i, p.Shape()).Data()
		grad := p.Grad().Data()
		param := p.Value().Data()

		for j := range param {
			g := grad[j]
			switch {
			case g > a.clip:
				g = a.clip
			case g < -a.clip:
				g = -a.clip
			}

			m[j] = a.beta1*m[j] + (1-a.beta1)*g
			v[j] = a.beta2*v[j] + (1-a.beta2)*g*g

			mHat := m[j] / c1
			vHat := v[j] / c2
			param[j] -= a.lr * mHat / (math32.Sqrt(vHat) + a.eps)
		}
	})
}

func (a *Adam) corrections() (c1, c2 float32) {
	if a.correction == BiasCorrectionLegacy {
		return (1 - a.beta1) * (1 - a.beta1), (1 - a.beta2) * (1 - a.beta2)
	}
	t := float32(a.t)
	return 1 - math32.Pow(a.beta1, t), 1 - math32.Pow(a.beta2, t)
}

// Steps returns the number of Step calls so far.
func (a *Adam) Steps() int {
	return a.t
}

// LR returns the learning rate.
func (a *Adam) LR() float32 {
	return a.lr
}

// Name returns "adam".
func (a *Adam) Name() string {
	return "adam"
}
