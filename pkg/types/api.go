package types

// PredictRequest is the JSON body of POST /predict. Values are decoded loosely:
// numbers, numeric strings and booleans are accepted for every field.
type PredictRequest struct {
	// example: 2000
	Size any `json:"size" example:"2000"`
	// example: 3
	Bedrooms any `json:"bedrooms" example:"3"`
	// example: 10
	Age any `json:"age" example:"10"`
	// example: 5
	Location any `json:"location" example:"5"`
}

// Predictions holds the three model outputs returned by POST /predict.
type Predictions struct {
	// Linear regression price in lakhs, rounded to 2 decimals.
	// example: 45.67
	LinearRegression float64 `json:"linear_regression" example:"45.67"`
	// SVR price in lakhs, rounded to 2 decimals.
	// example: 44.1
	SVR float64 `json:"svr" example:"44.1"`
	// Logistic regression price band.
	// example: High Price
	LogisticRegression string `json:"logistic_regression" example:"High Price"`
}

// BestModel describes the model the service recommends.
type BestModel struct {
	// example: Logistic Regression
	Name string `json:"name" example:"Logistic Regression"`
	// example: 1
	Accuracy float64 `json:"accuracy" example:"1"`
	// example: Highest decision accuracy and reliability
	Reason string `json:"reason" example:"Highest decision accuracy and reliability"`
}

// PredictResponse is returned by POST /predict on success.
type PredictResponse struct {
	// example: true
	Success     bool        `json:"success" example:"true"`
	Predictions Predictions `json:"predictions"`
	BestModel   BestModel   `json:"best_model"`
}

// ErrorResponse is the failure envelope of POST /predict and the JSON error
// payload of the operational endpoints.
type ErrorResponse struct {
	// example: false
	Success bool `json:"success" example:"false"`
	// Error message.
	// example: missing field: size
	Error string `json:"error" example:"missing field: size"`
}

// ComparisonRow is one line of the model comparison table on the form page.
type ComparisonRow struct {
	Model       string `json:"model"`
	Prediction  string `json:"prediction"`
	Performance string `json:"performance"`
	Reason      string `json:"reason"`
}

// ModelsResponse wraps the artifacts returned by GET /models.
type ModelsResponse struct {
	Models []Artifact `json:"models"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Overall manager state (loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Loaded model artifacts.
	Models []Artifact `json:"models"`
	// Prediction store backend.
	// example: mongo
	StoreBackend string `json:"store_backend" example:"mongo"`
	// Circuit breaker state guarding the store (closed, half-open, open).
	// example: closed
	StoreBreaker string `json:"store_breaker,omitempty" example:"closed"`
	// Total predictions served.
	// example: 42
	PredictionsTotal uint64 `json:"predictions_total" example:"42"`
	// Total prediction records the store failed to write.
	// example: 0
	StoreFailuresTotal uint64 `json:"store_failures_total" example:"0"`
	// Last error observed by the manager (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
