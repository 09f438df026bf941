// Package tempseries is the root of a small library and command line tool for
// descriptive statistics over a series of temperatures.
//
// # Features
//
//   - A growable series that doubles its storage and rejects temperatures
//     below absolute zero (-273 °C)
//   - Average, population standard deviation, minimum and maximum
//   - Nearest-value search with ties resolved toward the larger value
//   - Threshold filtering that keeps insertion order
//   - Reading values from delimited text
//
// # Quick Start
//
//	series, err := timeseries.FromValues([]float64{3, -5, 1, 5})
//	if err != nil {
//	    return err
//	}
//	series.Append(12.5, 13)
//	summary, err := series.SummaryStatistics()
//
// # Packages
//
//   - timeseries: the Series type, its statistics and the value reader
//   - cmd/tempseries: the command line tool
package tempseries
