package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [temperatures...]",
		Short: "Print summary statistics of a series",
		Long: `The 'stats' command prints the count, capacity, average, population
standard deviation, minimum and maximum of the series.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSeries(cmd, args)
			if err != nil {
				return err
			}
			sum, err := s.SummaryStatistics()
			if err != nil {
				return errors.Wrap(err, "computing statistics")
			}
			logger.Debugw("statistics computed", "len", s.Len(), "average", sum.Average)
			return renderStats(cmd.OutOrStdout(), a.cfg.Format, s, sum)
		},
	}
	addValuesFlag(cmd)
	return cmd
}
