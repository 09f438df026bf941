package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/sartorproj/tempseries/internal/config"
	"github.com/sartorproj/tempseries/timeseries"
)

// statsReport is the json shape of the stats command.
type statsReport struct {
	Count     int     `json:"count"`
	Capacity  int     `json:"capacity"`
	Average   float64 `json:"average"`
	Deviation float64 `json:"deviation"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

type closestReport struct {
	Target  float64 `json:"target"`
	Closest float64 `json:"closest"`
}

type filterReport struct {
	Threshold float64   `json:"threshold"`
	Direction string    `json:"direction"`
	Values    []float64 `json:"values"`
}

// row is one label and value line of text output.
type row struct {
	label string
	value string
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRows(w io.Writer, rows []row) error {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Width(11)

	lines := lo.Map(rows, func(rw row, _ int) string {
		return label.Render(rw.label) + rw.value
	})
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func renderStats(w io.Writer, format string, s *timeseries.Series, sum timeseries.Summary) error {
	if format == config.FormatJSON {
		return writeJSON(w, statsReport{
			Count:     s.Len(),
			Capacity:  s.Cap(),
			Average:   sum.Average,
			Deviation: sum.Deviation,
			Min:       sum.Min,
			Max:       sum.Max,
		})
	}

	return writeRows(w, []row{
		{"count", humanize.Comma(int64(s.Len()))},
		{"capacity", humanize.Comma(int64(s.Cap()))},
		{"average", fmt.Sprintf("%.4f", sum.Average)},
		{"deviation", fmt.Sprintf("%.4f", sum.Deviation)},
		{"min", formatFloat(sum.Min)},
		{"max", formatFloat(sum.Max)},
	})
}

func renderClosest(w io.Writer, format string, target, closest float64) error {
	if format == config.FormatJSON {
		return writeJSON(w, closestReport{Target: target, Closest: closest})
	}
	_, err := fmt.Fprintln(w, formatFloat(closest))
	return err
}

func renderFilter(w io.Writer, format string, threshold float64, direction string, values []float64) error {
	if format == config.FormatJSON {
		return writeJSON(w, filterReport{Threshold: threshold, Direction: direction, Values: values})
	}
	if len(values) == 0 {
		return nil
	}
	lines := lo.Map(values, func(v float64, _ int) string {
		return formatFloat(v)
	})
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
