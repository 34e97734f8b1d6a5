package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArtifact reports an artifact whose fitted attributes are inconsistent.
	ErrInvalidArtifact = errors.New("invalid artifact")
	// ErrFeatureMismatch reports an input vector of the wrong width.
	ErrFeatureMismatch = errors.New("feature count mismatch")
)

func mismatch(got, want int) error {
	return fmt.Errorf("%w: got %d, want %d", ErrFeatureMismatch, got, want)
}
