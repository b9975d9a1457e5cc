package main

import (
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tropath/graphfile"
	"github.com/katalvlaran/tropath/matrix"
)

const (
	flagVertices  = "vertices"
	flagDensity   = "density"
	flagSeed      = "seed"
	flagMaxWeight = "max-weight"
)

// newRandomCmd prints a random graph document.
func newRandomCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random graph document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt(flagVertices)
			p, _ := cmd.Flags().GetFloat64(flagDensity)
			seed, _ := cmd.Flags().GetInt64(flagSeed)
			maxW, _ := cmd.Flags().GetInt64(flagMaxWeight)

			adj, err := matrix.RandomSparse(n, p, rand.New(rand.NewSource(seed)), maxW)
			if err != nil {
				return err
			}
			a.log.Info("random graph generated",
				slog.Int("vertices", n), slog.Float64("density", p), slog.Int64("seed", seed))

			return graphfile.Encode(a.out, &graphfile.Graph{Adjacency: adj})
		},
	}
	cmd.Flags().Int(flagVertices, 5, "vertex count")
	cmd.Flags().Float64(flagDensity, 0.4, "edge probability in [0,1]")
	cmd.Flags().Int64(flagSeed, 1, "random seed")
	cmd.Flags().Int64(flagMaxWeight, 9, "largest edge weight")

	return cmd
}
