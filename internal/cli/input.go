package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sartorproj/tempseries/timeseries"
	"github.com/spf13/cobra"
)

// addValuesFlag registers --values, which accepts negative numbers that
// would otherwise be taken for flags.
func addValuesFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Slice("values", nil, "comma separated temperatures, e.g. --values=-3,4.5")
}

// loadSeries builds a series from --values and positional arguments, or
// from stdin when neither is given.
func (a *app) loadSeries(cmd *cobra.Command, args []string) (*timeseries.Series, error) {
	values, err := cmd.Flags().GetFloat64Slice("values")
	if err != nil {
		return nil, err
	}

	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Errorf("invalid temperature %q", arg)
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		logger.Debug("no values given, reading stdin")
		opts := a.cfg.Input
		s, err := timeseries.ReadSeries(cmd.InOrStdin(), &opts)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		logger.Debugw("series loaded", "source", "stdin", "len", s.Len(), "cap", s.Cap())
		return s, nil
	}

	s, err := timeseries.FromValues(values)
	if err != nil {
		return nil, err
	}
	logger.Debugw("series loaded", "source", "args", "len", s.Len(), "cap", s.Cap())
	return s, nil
}
