package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

func computeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compute FRONT_FILE...",
		Short: "Print the configured indicators for every front file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.configuration(cmd)
			if err != nil {
				return err
			}
			inds, err := build(cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprint(w, "FRONT\tPOINTS")
			for _, ind := range inds {
				fmt.Fprintf(w, "\t%s", ind.Name())
			}
			fmt.Fprintln(w)

			for _, path := range args {
				front, err := framework.ReadFrontFile(path)
				if err != nil {
					return err
				}
				klog.V(2).InfoS("read front", "path", path, "points", len(front))

				fmt.Fprintf(w, "%s\t%s", path, humanize.Comma(int64(len(front))))
				for _, ind := range inds {
					v, err := ind.Compute(front)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					fmt.Fprintf(w, "\t%s", strconv.FormatFloat(v, 'g', 10, 64))
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
}
