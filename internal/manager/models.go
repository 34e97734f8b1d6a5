package manager

import (
	"fmt"

	"housepriced/internal/model"
	"housepriced/internal/registry"
	"housepriced/pkg/types"
)

// Artifact IDs (file basenames) the manager requires.
const (
	ArtifactLinear         = "linear_model"
	ArtifactLogistic       = "logistic_model"
	ArtifactLogisticScaler = "logistic_scaler"
	ArtifactSVR            = "svr_model"
	ArtifactSVRScaler      = "svr_scaler"
)

// RequiredArtifacts lists every artifact LoadModelSet resolves, in load order.
var RequiredArtifacts = []string{
	ArtifactLinear,
	ArtifactLogistic,
	ArtifactLogisticScaler,
	ArtifactSVR,
	ArtifactSVRScaler,
}

// featureWidth is the length of types.HouseFeatures.Vector.
const featureWidth = 4

// ModelSet holds the five decoded artifacts.
type ModelSet struct {
	Linear         model.Regressor
	SVR            model.Regressor
	SVRScaler      model.Transformer
	Logistic       model.Classifier
	LogisticScaler model.Transformer

	// Artifacts describes the loaded files, Kind and Features filled in.
	Artifacts []types.Artifact
}

// LoadModelSet decodes the required artifacts out of the discovered ones.
// A missing artifact yields ErrModelNotFound; a wrong kind or width is an
// error naming the file.
func LoadModelSet(artifacts []types.Artifact) (*ModelSet, error) {
	ms := &ModelSet{}
	for _, id := range RequiredArtifacts {
		a, ok := registry.Find(artifacts, id)
		if !ok {
			return nil, ErrModelNotFound(id)
		}
		m, err := model.LoadFile(a.Path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", id, err)
		}
		if m.Features() != featureWidth {
			return nil, fmt.Errorf("load %s: expects %d features, have %d", id, m.Features(), featureWidth)
		}
		if err := ms.assign(id, m); err != nil {
			return nil, fmt.Errorf("load %s: %w", id, err)
		}
		a.Kind = m.Kind()
		a.Features = m.Features()
		ms.Artifacts = append(ms.Artifacts, a)
	}
	return ms, nil
}

func (ms *ModelSet) assign(id string, m model.Model) error {
	var ok bool
	switch id {
	case ArtifactLinear:
		ms.Linear, ok = m.(model.Regressor)
	case ArtifactSVR:
		ms.SVR, ok = m.(model.Regressor)
	case ArtifactSVRScaler:
		ms.SVRScaler, ok = m.(model.Transformer)
	case ArtifactLogistic:
		ms.Logistic, ok = m.(model.Classifier)
	case ArtifactLogisticScaler:
		ms.LogisticScaler, ok = m.(model.Transformer)
	}
	if !ok {
		return fmt.Errorf("unexpected model kind %s", m.Kind())
	}
	return nil
}
