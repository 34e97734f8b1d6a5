package manager

import "housepriced/pkg/types"

// Display names of the three models.
const (
	ModelLinear   = "Linear Regression"
	ModelSVR      = "SVR"
	ModelLogistic = "Logistic Regression"
)

// Scores recorded when the models were trained.
var modelPerformance = map[string]string{
	ModelLinear:   "R² = 0.99",
	ModelSVR:      "R² = 0.92",
	ModelLogistic: "Accuracy = 100%",
}

var modelReason = map[string]string{
	ModelLinear:   "Simple and interpretable numeric prediction",
	ModelSVR:      "Captures non-linear patterns",
	ModelLogistic: "Highest decision accuracy and reliability",
}

// BestModel is fixed: the logistic classifier scored highest in training.
func BestModel() types.BestModel {
	return types.BestModel{Name: ModelLogistic, Accuracy: 1.0, Reason: modelReason[ModelLogistic]}
}

// Price band labels. The form page uses the long form.
const (
	CategoryHigh     = "High Price"
	CategoryLow      = "Low Price"
	CategoryHighLong = "High Price House"
	CategoryLowLong  = "Low Price House"
)

// categoryFor maps a logistic class to its label for the given source.
// Class 1 is the high price band; every other class is low.
func categoryFor(class int, src types.Source) string {
	high := class == 1
	if src == types.SourceForm {
		if high {
			return CategoryHighLong
		}
		return CategoryLowLong
	}
	if high {
		return CategoryHigh
	}
	return CategoryLow
}

// Comparison returns the table shown on the form page, one row per model.
func (p Prediction) Comparison() []types.ComparisonRow {
	return []types.ComparisonRow{
		{Model: ModelLinear, Prediction: formatLakhs(p.Linear), Performance: modelPerformance[ModelLinear], Reason: modelReason[ModelLinear]},
		{Model: ModelSVR, Prediction: formatLakhs(p.SVR), Performance: modelPerformance[ModelSVR], Reason: modelReason[ModelSVR]},
		{Model: ModelLogistic, Prediction: p.Category, Performance: modelPerformance[ModelLogistic], Reason: modelReason[ModelLogistic]},
	}
}
