package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newFilterCmd(a *app) *cobra.Command {
	var below, above float64

	cmd := &cobra.Command{
		Use:   "filter [temperatures...]",
		Short: "Print temperatures below or above a threshold",
		Long: `The 'filter' command prints, in input order, every temperature strictly
below --below or strictly above --above. Exactly one of the two is required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSeries(cmd, args)
			if err != nil {
				return err
			}

			var (
				values    []float64
				threshold float64
				direction string
			)
			if cmd.Flags().Changed("below") {
				threshold, direction = below, "below"
				values, err = s.LessThan(below)
			} else {
				threshold, direction = above, "above"
				values, err = s.GreaterThan(above)
			}
			if err != nil {
				return errors.Wrap(err, "filtering temperatures")
			}
			logger.Debugw("filtered", "direction", direction, "threshold", threshold, "matches", len(values))
			return renderFilter(cmd.OutOrStdout(), a.cfg.Format, threshold, direction, values)
		},
	}
	cmd.Flags().Float64Var(&below, "below", 0, "keep temperatures strictly below this value")
	cmd.Flags().Float64Var(&above, "above", 0, "keep temperatures strictly above this value")
	cmd.MarkFlagsMutuallyExclusive("below", "above")
	cmd.MarkFlagsOneRequired("below", "above")
	addValuesFlag(cmd)
	return cmd
}
