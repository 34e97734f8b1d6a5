package types

import "time"

// Source identifies which surface produced a prediction.
type Source string

const (
	SourceForm Source = "HTML_FORM"
	SourceAPI  Source = "API"
	SourceCLI  Source = "CLI"
)

// HouseFeatures is the model input. Vector order is size, bedrooms, age, location.
type HouseFeatures struct {
	// Living area in square feet.
	// example: 2000
	Size float64 `json:"size" example:"2000"`
	// example: 3
	Bedrooms int `json:"bedrooms" example:"3"`
	// House age in years.
	// example: 10
	Age int `json:"age" example:"10"`
	// Location rating (1-10).
	// example: 5
	Location int `json:"location" example:"5"`
}

// Vector returns the features in the order the models were trained on.
func (f HouseFeatures) Vector() []float64 {
	return []float64{f.Size, float64(f.Bedrooms), float64(f.Age), float64(f.Location)}
}

// Artifact is a model file discovered on disk.
type Artifact struct {
	// Basename without extension, e.g. svr_scaler.
	// example: svr_model
	ID string `json:"id" example:"svr_model"`
	// Absolute path to the artifact file.
	// example: /srv/models/svr_model.json
	Path string `json:"path" example:"/srv/models/svr_model.json"`
	// Encoding inferred from the extension: json, yaml or toml.
	// example: json
	Format string `json:"format" example:"json"`
	// Model kind declared inside the artifact, filled once decoded.
	// example: svr
	Kind string `json:"kind,omitempty" example:"svr"`
	// Number of input features the artifact expects, filled once decoded.
	// example: 4
	Features int `json:"features,omitempty" example:"4"`
}

// PredictionRecord is the document written once per prediction request.
type PredictionRecord struct {
	Size             float64   `json:"size" bson:"size"`
	Bedrooms         int       `json:"bedrooms" bson:"bedrooms"`
	Age              int       `json:"age" bson:"age"`
	Location         int       `json:"location" bson:"location"`
	LinearPrediction float64   `json:"linear_prediction" bson:"linear_prediction"`
	SVRPrediction    float64   `json:"svr_prediction" bson:"svr_prediction"`
	Category         string    `json:"category" bson:"category"`
	BestModel        string    `json:"best_model" bson:"best_model"`
	Source           Source    `json:"source" bson:"source"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}
