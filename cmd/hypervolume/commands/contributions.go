package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moo-lab/hypervolume/apis/config"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/hypervolume"
)

func contributionsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "contributions FRONT_FILE",
		Short: "Print the exclusive hypervolume of every point, one per input line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.configuration(cmd)
			if err != nil {
				return err
			}
			ref, err := config.Reference(cfg)
			if err != nil {
				return err
			}

			var opt hypervolume.Option
			if ref.Point != nil {
				opt = hypervolume.WithReferencePoint(ref.Point)
			} else {
				opt = hypervolume.WithReferenceFront(ref.Front, ref.Offset)
			}
			hv, err := hypervolume.New(opt)
			if err != nil {
				return err
			}

			front, err := framework.ReadFrontFile(args[0])
			if err != nil {
				return err
			}
			contributions, err := hv.ComputeHypervolumeContribution(front)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			for _, c := range contributions {
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(c, 'g', 10, 64))
			}
			return nil
		},
	}
}
