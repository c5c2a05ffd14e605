package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNoPoints is returned when Fit is called without any points.
	ErrNoPoints = errors.New("no points to cluster")

	// ErrInvalidBounds is returned when the initialization range is empty.
	ErrInvalidBounds = errors.New("init bounds: min must be less than max")
)

// ErrDimensionMismatch indicates a point whose dimensionality differs from
// the first point (or from the fitted model, for Predict).
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}
