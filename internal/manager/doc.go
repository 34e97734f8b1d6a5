// Package manager owns the loaded model set and runs predictions. It is
// structured into small files by concern:
//
//   - manager.go: core Manager type, Ready, ListModels, lifecycle.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - models.go: LoadModelSet resolves the five artifacts from the registry.
//   - predict.go: Predict runs linear, SVR and logistic models and records the result.
//   - catalog.go: model names, training scores and the comparison table.
//   - helpers.go: rounding and number formatting matching the form page output.
//   - errors.go: error types and helpers (IsModelNotFound, IsInvalidInput, ...).
//   - events.go, eventpub_*.go: event publishing.
//   - status_report.go: Status for /status.
//
// Models are immutable once loaded, so Predict is safe for concurrent use.
package manager
