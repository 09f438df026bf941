package timeseries

import (
	"math"

	"github.com/samber/lo"
)

const (
	// AbsoluteZero is the lowest temperature, in degrees Celsius, a series accepts.
	AbsoluteZero = -273.0

	defaultCapacity = 2

	// tieEpsilon is the distance within which two candidates in
	// ClosestToValue are considered equally close.
	tieEpsilon = 1e-7
)

// Series is an insertion-ordered sequence of temperatures.
//
// The backing storage grows by doubling and never shrinks. A Series is not
// safe for concurrent use; callers sharing one must serialize access.
type Series struct {
	values []float64
}

// Summary is a snapshot of the descriptive statistics of a series.
type Summary struct {
	Average   float64
	Deviation float64
	Min       float64
	Max       float64
}

// New creates an empty series with the default capacity.
func New() *Series {
	return &Series{
		values: make([]float64, 0, defaultCapacity),
	}
}

// FromValues creates a series holding a copy of values.
// The capacity is twice the number of values. If any value is invalid
// no series is created.
func FromValues(values []float64) (*Series, error) {
	if err := validate(values); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return New(), nil
	}

	buf := make([]float64, len(values), 2*len(values))
	copy(buf, values)
	return &Series{values: buf}, nil
}

// Append adds values to the end of the series and returns the new length.
// Either all values are added or, on error, none are.
func (s *Series) Append(values ...float64) (int, error) {
	if err := validate(values); err != nil {
		return s.Len(), err
	}

	need := len(s.values) + len(values)
	if need > cap(s.values) {
		newCap := cap(s.values)
		if newCap == 0 {
			newCap = defaultCapacity
		}
		for newCap < need {
			newCap *= 2
		}
		grown := make([]float64, len(s.values), newCap)
		copy(grown, s.values)
		s.values = grown
	}

	// capacity is already sufficient, so append never reallocates here
	s.values = append(s.values, values...)
	return len(s.values), nil
}

// Len returns the number of values in the series.
func (s *Series) Len() int {
	return len(s.values)
}

// Cap returns the capacity of the backing storage.
func (s *Series) Cap() int {
	return cap(s.values)
}

// IsEmpty reports whether the series holds no values.
func (s *Series) IsEmpty() bool {
	return len(s.values) == 0
}

// Values returns a copy of the series in insertion order.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Average calculates the arithmetic mean of the series.
func (s *Series) Average() (float64, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySeries
	}
	return lo.Sum(s.values) / float64(len(s.values)), nil
}

// Deviation calculates the population standard deviation of the series.
func (s *Series) Deviation() (float64, error) {
	mean, err := s.Average()
	if err != nil {
		return 0, err
	}
	sumSq := 0.0
	for _, v := range s.values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(s.values))), nil
}

// Min returns the minimum value in the series.
func (s *Series) Min() (float64, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySeries
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the maximum value in the series.
func (s *Series) Max() (float64, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySeries
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// ClosestToZero returns the value closest to zero.
// Between two equally close values the positive one wins.
func (s *Series) ClosestToZero() (float64, error) {
	return s.ClosestToValue(0)
}

// ClosestToValue returns the value closest to target.
// When two values are equally close (within 1e-7) the larger one is returned,
// so for 0.2 and -0.2 around 0 the result is 0.2.
func (s *Series) ClosestToValue(target float64) (float64, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySeries
	}

	closest := s.values[0]
	minDiff := math.Abs(closest - target)
	for _, v := range s.values[1:] {
		diff := math.Abs(v - target)
		switch {
		case math.Abs(diff-minDiff) < tieEpsilon:
			if v > closest {
				closest = v
			}
			minDiff = math.Min(minDiff, diff)
		case diff < minDiff:
			closest = v
			minDiff = diff
		}
	}
	return closest, nil
}

// LessThan returns, in order, every value strictly less than threshold.
func (s *Series) LessThan(threshold float64) ([]float64, error) {
	if s.IsEmpty() {
		return nil, ErrEmptySeries
	}
	return lo.Filter(s.values, func(v float64, _ int) bool {
		return v < threshold
	}), nil
}

// GreaterThan returns, in order, every value strictly greater than threshold.
func (s *Series) GreaterThan(threshold float64) ([]float64, error) {
	if s.IsEmpty() {
		return nil, ErrEmptySeries
	}
	return lo.Filter(s.values, func(v float64, _ int) bool {
		return v > threshold
	}), nil
}

// SummaryStatistics computes the average, deviation, min and max of the series.
func (s *Series) SummaryStatistics() (Summary, error) {
	if s.IsEmpty() {
		return Summary{}, ErrEmptySeries
	}

	// none of these can fail on a non-empty series
	avg, _ := s.Average()
	dev, _ := s.Deviation()
	min, _ := s.Min()
	max, _ := s.Max()

	return Summary{
		Average:   avg,
		Deviation: dev,
		Min:       min,
		Max:       max,
	}, nil
}
