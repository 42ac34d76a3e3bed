package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func recomputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute",
		Short: "Recompute the stats snapshot of every habit once",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bootstrap()
			if err != nil {
				return err
			}
			n, err := b.svc.RecomputeAll(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "refreshed %d habits\n", n)
			return err
		},
	}
}
