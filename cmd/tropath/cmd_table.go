package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const flagStep = "step"

// newTableCmd prints one step of the distance table.
func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the distance matrix of one table step",
		Long: `Print the best distances using at most --step edges (default: the final
step, n-1). Unreachable cells print as ∞.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			t, err := a.build(g.Adjacency, false)
			if err != nil {
				return err
			}

			step, _ := cmd.Flags().GetInt(flagStep)
			if step == 0 {
				step = t.Steps()
			}
			d, err := t.Distances(step)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "step %d of %d\n%s", step, t.Steps(), d)
			return nil
		},
	}
	cmd.Flags().Int(flagStep, 0, "table step (1..n-1); 0 selects the final step")

	return cmd
}
