// Package model decodes exported scikit-learn estimators and evaluates them.
//
// Artifacts are plain JSON, YAML or TOML documents carrying the fitted
// attributes of an estimator (coef_, intercept_, support_vectors_, ...). The
// "kind" key selects the estimator:
//
//   - linear_regression: coef, intercept
//   - logistic_regression: coef (one row per class, a single row when binary), intercept, classes
//   - standard_scaler: mean, scale
//   - svr: kernel, gamma, coef0, degree, support_vectors, dual_coef, intercept
//
// Every kind accepts n_features_in and feature_names. Predictions follow
// scikit-learn's predict/transform for the same fitted attributes.
package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"housepriced/internal/common/fsutil"
)

// Kinds understood by Load.
const (
	KindLinearRegression   = "linear_regression"
	KindLogisticRegression = "logistic_regression"
	KindStandardScaler     = "standard_scaler"
	KindSVR                = "svr"
)

// Model is a decoded, validated artifact.
type Model interface {
	Kind() string
	// Features is the input width the model was fitted on.
	Features() int
}

// Regressor predicts a continuous target.
type Regressor interface {
	Model
	Predict(x []float64) (float64, error)
}

// Classifier predicts a class label.
type Classifier interface {
	Model
	PredictClass(x []float64) (int, error)
}

// Transformer maps a feature vector to another of the same width.
type Transformer interface {
	Model
	Transform(x []float64) ([]float64, error)
}

// Meta holds the keys shared by every artifact kind.
type Meta struct {
	Estimator    string   `json:"kind" yaml:"kind" toml:"kind"`
	NFeaturesIn  int      `json:"n_features_in,omitempty" yaml:"n_features_in,omitempty" toml:"n_features_in,omitempty"`
	FeatureNames []string `json:"feature_names,omitempty" yaml:"feature_names,omitempty" toml:"feature_names,omitempty"`
}

// LoadFile reads and decodes the artifact at path. The encoding is chosen by
// file extension: .json, .yaml/.yml or .toml.
func LoadFile(path string) (Model, error) {
	format := fsutil.FormatOf(path)
	if format == "" {
		return nil, fmt.Errorf("unsupported artifact extension: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Decode(b, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode builds a Model from raw artifact bytes in the given format
// (json, yaml or toml).
func Decode(b []byte, format string) (Model, error) {
	var hdr Meta
	if err := unmarshal(b, format, &hdr); err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(hdr.Estimator)) {
	case KindLinearRegression:
		var m LinearRegression
		if err := unmarshal(b, format, &m); err != nil {
			return nil, err
		}
		return &m, m.validate()
	case KindLogisticRegression:
		var m LogisticRegression
		if err := unmarshal(b, format, &m); err != nil {
			return nil, err
		}
		return &m, m.validate()
	case KindStandardScaler:
		var m StandardScaler
		if err := unmarshal(b, format, &m); err != nil {
			return nil, err
		}
		return &m, m.validate()
	case KindSVR:
		var m SVR
		if err := unmarshal(b, format, &m); err != nil {
			return nil, err
		}
		return &m, m.validate()
	case "":
		return nil, fmt.Errorf("%w: missing kind", ErrInvalidArtifact)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidArtifact, hdr.Estimator)
	}
}

func unmarshal(b []byte, format string, v any) error {
	switch format {
	case "json":
		return json.Unmarshal(b, v)
	case "yaml":
		return yaml.Unmarshal(b, v)
	case "toml":
		return toml.Unmarshal(b, v)
	default:
		return fmt.Errorf("unsupported artifact format: %s", format)
	}
}

// checkWidth reconciles a declared n_features_in with the width implied by
// the fitted attributes.
func checkWidth(declared, inferred int) (int, error) {
	if inferred <= 0 {
		return 0, fmt.Errorf("%w: no fitted attributes", ErrInvalidArtifact)
	}
	if declared != 0 && declared != inferred {
		return 0, fmt.Errorf("%w: n_features_in=%d but attributes have width %d", ErrInvalidArtifact, declared, inferred)
	}
	return inferred, nil
}
