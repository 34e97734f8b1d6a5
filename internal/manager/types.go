package manager

import (
	"time"

	"housepriced/pkg/types"
)

// State represents lifecycle state of the manager.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)

// Snapshot is a read-only projection of the manager state.
type Snapshot struct {
	State State
	Err   string
}

// Prediction is the outcome of one Predict call. Prices are in lakhs and
// already rounded to two decimals.
type Prediction struct {
	Features types.HouseFeatures
	Source   types.Source
	Linear   float64
	SVR      float64
	Class    int
	Category string
	Best     types.BestModel
}

// Response renders p as the POST /predict success body.
func (p Prediction) Response() types.PredictResponse {
	return types.PredictResponse{
		Success: true,
		Predictions: types.Predictions{
			LinearRegression:   p.Linear,
			SVR:                p.SVR,
			LogisticRegression: p.Category,
		},
		BestModel: p.Best,
	}
}

// Record builds the document persisted for p.
func (p Prediction) Record(at time.Time) types.PredictionRecord {
	return types.PredictionRecord{
		Size:             p.Features.Size,
		Bedrooms:         p.Features.Bedrooms,
		Age:              p.Features.Age,
		Location:         p.Features.Location,
		LinearPrediction: p.Linear,
		SVRPrediction:    p.SVR,
		Category:         p.Category,
		BestModel:        p.Best.Name,
		Source:           p.Source,
		CreatedAt:        at.UTC(),
	}
}
