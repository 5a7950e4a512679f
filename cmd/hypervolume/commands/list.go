package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/indicators"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indicators",
		Short: "List the available indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range indicators.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind.String())
			}
			return nil
		},
	}
}
