package model

import "fmt"

// StandardScaler standardises features as (x - mean) / scale.
// A missing mean means centring was disabled, a missing scale means scaling
// was disabled. Zero entries in scale are treated as 1, as scikit-learn does
// for constant features.
type StandardScaler struct {
	Meta `yaml:",inline"`

	Mean  []float64 `json:"mean,omitempty" yaml:"mean,omitempty" toml:"mean,omitempty"`
	Scale []float64 `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`

	n int
}

func (s *StandardScaler) Kind() string  { return KindStandardScaler }
func (s *StandardScaler) Features() int { return s.n }

func (s *StandardScaler) validate() error {
	w := len(s.Mean)
	if w == 0 {
		w = len(s.Scale)
	}
	if len(s.Mean) > 0 && len(s.Scale) > 0 && len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("%w: mean has %d entries, scale has %d", ErrInvalidArtifact, len(s.Mean), len(s.Scale))
	}
	n, err := checkWidth(s.NFeaturesIn, w)
	s.n = n
	return err
}

// Transform returns a new standardised vector; x is not modified.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != s.n {
		return nil, mismatch(len(x), s.n)
	}
	out := make([]float64, len(x))
	for i, v := range x {
		if len(s.Mean) > 0 {
			v -= s.Mean[i]
		}
		if len(s.Scale) > 0 && s.Scale[i] != 0 {
			v /= s.Scale[i]
		}
		out[i] = v
	}
	return out, nil
}
