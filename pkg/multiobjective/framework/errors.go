package framework

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNullArgument is returned when a front, one of its points or a
	// reference point is nil.
	ErrNullArgument = errors.New("null argument")
	// ErrDimensionMismatch is returned when a point does not have the
	// dimensionality of the reference.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidConfiguration is returned when an indicator cannot be built
	// from the supplied reference data.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// DimensionMismatchError carries the offending point. Index is -1 when the
// mismatch is not attributable to a single front entry.
type DimensionMismatchError struct {
	Index int
	Got   int
	Want  int
}

func (e *DimensionMismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: got %d objectives, want %d", ErrDimensionMismatch, e.Got, e.Want)
	}
	return fmt.Sprintf("%v: point %d has %d objectives, want %d", ErrDimensionMismatch, e.Index, e.Got, e.Want)
}

func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

// ValidateReference checks that the reference point is usable.
func ValidateReference(ref ObjectiveSpacePoint) error {
	if ref == nil {
		return fmt.Errorf("reference point: %w", ErrNullArgument)
	}
	if len(ref) == 0 {
		return fmt.Errorf("reference point has no objectives: %w", ErrInvalidConfiguration)
	}
	for i, v := range ref {
		if math.IsNaN(v) {
			return fmt.Errorf("reference point objective %d is NaN: %w", i, ErrInvalidConfiguration)
		}
	}
	return nil
}

// ValidateFront checks that the front and all its points are non-nil and have
// dim objectives each. An empty, non-nil front is valid.
func ValidateFront(front Front, dim int) error {
	if front == nil {
		return fmt.Errorf("front: %w", ErrNullArgument)
	}
	for i, p := range front {
		if p == nil {
			return fmt.Errorf("point %d: %w", i, ErrNullArgument)
		}
		if len(p) != dim {
			return &DimensionMismatchError{Index: i, Got: len(p), Want: dim}
		}
	}
	return nil
}
