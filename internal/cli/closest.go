package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newClosestCmd(a *app) *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "closest [temperatures...]",
		Short: "Print the temperature closest to a value",
		Long: `The 'closest' command prints the temperature closest to --to (zero by
default). When two temperatures are equally close the larger one is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSeries(cmd, args)
			if err != nil {
				return err
			}
			closest, err := s.ClosestToValue(target)
			if err != nil {
				return errors.Wrap(err, "searching closest temperature")
			}
			return renderClosest(cmd.OutOrStdout(), a.cfg.Format, target, closest)
		},
	}
	cmd.Flags().Float64Var(&target, "to", 0, "value to search around")
	addValuesFlag(cmd)
	return cmd
}
