package model

// LinearRegression is an ordinary least squares fit: intercept + coef·x.
type LinearRegression struct {
	Meta `yaml:",inline"`

	Coef      []float64 `json:"coef" yaml:"coef" toml:"coef"`
	Intercept float64   `json:"intercept" yaml:"intercept" toml:"intercept"`

	n int
}

func (m *LinearRegression) Kind() string  { return KindLinearRegression }
func (m *LinearRegression) Features() int { return m.n }

func (m *LinearRegression) validate() error {
	n, err := checkWidth(m.NFeaturesIn, len(m.Coef))
	m.n = n
	return err
}

// Predict returns the regression value for x.
func (m *LinearRegression) Predict(x []float64) (float64, error) {
	if len(x) != m.n {
		return 0, mismatch(len(x), m.n)
	}
	return m.Intercept + dot(m.Coef, x), nil
}
