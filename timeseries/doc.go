// Package timeseries provides a growable temperature series and its descriptive statistics.
//
// A Series holds temperatures in degrees Celsius in insertion order. No value
// below AbsoluteZero is ever stored: construction and Append validate their
// whole input first and reject it with ErrInvalidValue without changing the
// series.
//
// # Creating a Series
//
//	series := timeseries.New()               // empty, capacity 2
//	series, err := timeseries.FromValues(xs) // capacity 2*len(xs)
//
// # Appending
//
// The backing storage doubles as needed and never shrinks:
//
//	n, err := series.Append(21.5, 22.0, 19.8)
//
// # Statistics
//
// Every query returns ErrEmptySeries on an empty series:
//
//	avg, err := series.Average()
//	dev, err := series.Deviation()     // population standard deviation
//	lo, err := series.Min()
//	hi, err := series.Max()
//	c, err := series.ClosestToZero()   // ties go to the larger value
//	c, err = series.ClosestToValue(20)
//	cold, err := series.LessThan(0)
//	warm, err := series.GreaterThan(25)
//	sum, err := series.SummaryStatistics()
//
// # Reading values
//
// Delimited text can be turned into a series:
//
//	series, err := timeseries.ReadSeries(os.Stdin, timeseries.DefaultReadOptions())
package timeseries
