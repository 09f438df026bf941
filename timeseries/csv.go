package timeseries

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadOptions holds options for reading delimited values.
type ReadOptions struct {
	ValueColumn string // Column name for values (default: "value")
	HasHeader   bool   // Whether input has a header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultReadOptions returns default options for reading values.
func DefaultReadOptions() *ReadOptions {
	return &ReadOptions{
		ValueColumn: "value",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// ReadValues reads one column of numbers from delimited text.
// Empty cells, NA/NaN/null markers in any case and cells that do not parse
// are skipped.
func ReadValues(r io.Reader, opts *ReadOptions) ([]float64, error) {
	if opts == nil {
		opts = DefaultReadOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrapf(err, "skipping row %d", i+1)
		}
	}

	valueIdx := 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading header")
		}
		valueIdx = valueColumn(header, opts.ValueColumn)
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading record")
		}
		if valueIdx >= len(record) {
			continue
		}

		cell := unquote(record[valueIdx])
		if isMissing(cell) {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || math.IsNaN(v) {
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	return values, nil
}

// ReadSeries reads values with ReadValues and builds a series from them.
func ReadSeries(r io.Reader, opts *ReadOptions) (*Series, error) {
	values, err := ReadValues(r, opts)
	if err != nil {
		return nil, err
	}
	return FromValues(values)
}

// valueColumn picks the column named name, then a well-known temperature
// column, then the last column.
func valueColumn(header []string, name string) int {
	fallback := -1
	for i, h := range header {
		h = unquote(h)
		if name != "" && h == name {
			return i
		}
		if fallback == -1 {
			switch strings.ToLower(h) {
			case "value", "temp", "temperature", "y":
				fallback = i
			}
		}
	}
	if fallback >= 0 {
		return fallback
	}
	return len(header) - 1
}

// isMissing reports whether cell is a missing-value marker, in any case.
func isMissing(cell string) bool {
	for _, marker := range []string{"", "NA", "NaN", "null"} {
		if strings.EqualFold(cell, marker) {
			return true
		}
	}
	return false
}

func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}
