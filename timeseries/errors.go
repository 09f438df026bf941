package timeseries

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidValue is returned when a value is below AbsoluteZero or is NaN.
	ErrInvalidValue = errors.New("invalid temperature")

	// ErrEmptySeries is returned by queries on a series with no values.
	ErrEmptySeries = errors.New("series is empty")

	// ErrNoData is returned when a reader yields no parsable values.
	ErrNoData = errors.New("no valid data found")
)

// validate checks every value before anything is mutated.
func validate(values []float64) error {
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			return errors.Wrapf(ErrInvalidValue, "value at index %d is not a number", i)
		case v < AbsoluteZero:
			return errors.Wrapf(ErrInvalidValue, "value %v at index %d is below absolute zero", v, i)
		}
	}
	return nil
}
