package model

import "fmt"

// LogisticRegression is a fitted linear classifier. A single coefficient row
// is the binary case: classes[1] is chosen when the decision value is
// positive. With k rows the class with the largest decision value wins.
type LogisticRegression struct {
	Meta `yaml:",inline"`

	Coef      [][]float64 `json:"coef" yaml:"coef" toml:"coef"`
	Intercept []float64   `json:"intercept,omitempty" yaml:"intercept,omitempty" toml:"intercept,omitempty"`
	Classes   []int       `json:"classes,omitempty" yaml:"classes,omitempty" toml:"classes,omitempty"`

	n int
}

func (m *LogisticRegression) Kind() string  { return KindLogisticRegression }
func (m *LogisticRegression) Features() int { return m.n }

func (m *LogisticRegression) validate() error {
	w := rectangular(m.Coef)
	if w < 0 {
		return fmt.Errorf("%w: coef rows differ in width", ErrInvalidArtifact)
	}
	n, err := checkWidth(m.NFeaturesIn, w)
	if err != nil {
		return err
	}
	m.n = n
	if len(m.Intercept) == 0 {
		m.Intercept = make([]float64, len(m.Coef))
	}
	if len(m.Intercept) != len(m.Coef) {
		return fmt.Errorf("%w: %d intercepts for %d coef rows", ErrInvalidArtifact, len(m.Intercept), len(m.Coef))
	}
	if len(m.Classes) == 0 && len(m.Coef) == 1 {
		m.Classes = []int{0, 1}
	}
	want := len(m.Coef)
	if want == 1 {
		want = 2
	}
	if len(m.Classes) != want {
		return fmt.Errorf("%w: %d classes for %d coef rows", ErrInvalidArtifact, len(m.Classes), len(m.Coef))
	}
	return nil
}

// Decision returns one decision value per coefficient row.
func (m *LogisticRegression) Decision(x []float64) ([]float64, error) {
	if len(x) != m.n {
		return nil, mismatch(len(x), m.n)
	}
	out := make([]float64, len(m.Coef))
	for k, row := range m.Coef {
		out[k] = m.Intercept[k] + dot(row, x)
	}
	return out, nil
}

// PredictClass returns the predicted class label for x.
func (m *LogisticRegression) PredictClass(x []float64) (int, error) {
	d, err := m.Decision(x)
	if err != nil {
		return 0, err
	}
	if len(d) == 1 {
		if d[0] > 0 {
			return m.Classes[1], nil
		}
		return m.Classes[0], nil
	}
	best := 0
	for k := 1; k < len(d); k++ {
		if d[k] > d[best] {
			best = k
		}
	}
	return m.Classes[best], nil
}
