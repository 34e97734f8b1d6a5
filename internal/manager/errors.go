package manager

import "errors"

// modelNotFoundError reports a required artifact missing from the models directory.
type modelNotFoundError struct{ id string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.id }

func ErrModelNotFound(id string) error { return modelNotFoundError{id: id} }

// IsModelNotFound reports whether the error indicates a missing model artifact.
func IsModelNotFound(err error) bool {
	var e modelNotFoundError
	return errors.As(err, &e)
}

// dependencyUnavailableError signals the manager cannot serve yet (models
// not loaded) so the HTTP layer can return 503 instead of 400.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates the service is not ready.
func IsDependencyUnavailable(err error) bool {
	var e dependencyUnavailableError
	return errors.As(err, &e)
}

// invalidInputError reports features the models cannot be evaluated on.
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

func ErrInvalidInput(msg string) error { return invalidInputError{msg: msg} }

// IsInvalidInput reports whether err was caused by the request features.
func IsInvalidInput(err error) bool {
	var e invalidInputError
	return errors.As(err, &e)
}
