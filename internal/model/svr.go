package model

import (
	"fmt"
	"math"
	"strings"
)

// Kernel names accepted in SVR artifacts.
const (
	KernelRBF     = "rbf"
	KernelLinear  = "linear"
	KernelPoly    = "poly"
	KernelSigmoid = "sigmoid"
)

// SVR is a fitted epsilon support vector regressor:
// intercept + sum_i dual_coef[i] * K(support_vectors[i], x).
// Gamma must be the resolved numeric value (_gamma), not "scale" or "auto".
type SVR struct {
	Meta `yaml:",inline"`

	Kernel         string      `json:"kernel" yaml:"kernel" toml:"kernel"`
	Gamma          float64     `json:"gamma" yaml:"gamma" toml:"gamma"`
	Coef0          float64     `json:"coef0" yaml:"coef0" toml:"coef0"`
	Degree         int         `json:"degree" yaml:"degree" toml:"degree"`
	SupportVectors [][]float64 `json:"support_vectors" yaml:"support_vectors" toml:"support_vectors"`
	DualCoef       []float64   `json:"dual_coef" yaml:"dual_coef" toml:"dual_coef"`
	Intercept      float64     `json:"intercept" yaml:"intercept" toml:"intercept"`

	n int
}

func (m *SVR) Kind() string  { return KindSVR }
func (m *SVR) Features() int { return m.n }

func (m *SVR) validate() error {
	m.Kernel = strings.ToLower(strings.TrimSpace(m.Kernel))
	if m.Kernel == "" {
		m.Kernel = KernelRBF
	}
	switch m.Kernel {
	case KernelLinear:
	case KernelRBF, KernelPoly, KernelSigmoid:
		if !(m.Gamma > 0) {
			return fmt.Errorf("%w: kernel %s needs a positive gamma", ErrInvalidArtifact, m.Kernel)
		}
	default:
		return fmt.Errorf("%w: unsupported kernel %q", ErrInvalidArtifact, m.Kernel)
	}
	if m.Degree == 0 {
		m.Degree = 3
	}
	w := rectangular(m.SupportVectors)
	if w < 0 {
		return fmt.Errorf("%w: support vectors differ in width", ErrInvalidArtifact)
	}
	if len(m.DualCoef) != len(m.SupportVectors) {
		return fmt.Errorf("%w: %d dual coefficients for %d support vectors", ErrInvalidArtifact, len(m.DualCoef), len(m.SupportVectors))
	}
	n, err := checkWidth(m.NFeaturesIn, w)
	m.n = n
	return err
}

func (m *SVR) kernel(sv, x []float64) float64 {
	switch m.Kernel {
	case KernelLinear:
		return dot(sv, x)
	case KernelPoly:
		return math.Pow(m.Gamma*dot(sv, x)+m.Coef0, float64(m.Degree))
	case KernelSigmoid:
		return math.Tanh(m.Gamma*dot(sv, x) + m.Coef0)
	default:
		return math.Exp(-m.Gamma * sqdist(sv, x))
	}
}

// Predict returns the regression value for x.
func (m *SVR) Predict(x []float64) (float64, error) {
	if len(x) != m.n {
		return 0, mismatch(len(x), m.n)
	}
	y := m.Intercept
	for i, sv := range m.SupportVectors {
		y += m.DualCoef[i] * m.kernel(sv, x)
	}
	return y, nil
}
