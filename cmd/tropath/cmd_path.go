package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tropath/graphfile"
	"github.com/katalvlaran/tropath/matrix"
	"github.com/katalvlaran/tropath/minplus"
)

const (
	flagFrom = "from"
	flagTo   = "to"

	promptText = "Between what two points would you like to find the shortest path?\n" +
		"Input two numbers separated by a space.\n\n"
)

// demoRows is the built-in four-vertex digraph used by the demo command.
var demoRows = [][]int64{
	{0, 5, 9, matrix.Sentinel},
	{matrix.Sentinel, 0, 1, matrix.Sentinel},
	{matrix.Sentinel, matrix.Sentinel, 0, 2},
	{matrix.Sentinel, 3, matrix.Sentinel, 0},
}

// newPathCmd answers queries on a graph document.
func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Answer shortest-path queries on a graph document",
		Long: `Answer shortest-path queries on the graph given by --graph.

Query sources, first match wins:
  --from/--to          a single pair
  document "queries"   every listed pair
  stdin                pairs of numbers until EOF`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			t, err := a.build(g.Adjacency, a.cfg.Verify)
			if err != nil {
				return err
			}
			return a.answer(cmd, t, g.Queries)
		},
	}
	addPairFlags(cmd)
	cmd.Flags().Bool(OptionVerify, DefaultOptionVerify, "cross-check the table against Floyd–Warshall")

	return cmd
}

// newDemoCmd answers queries on the built-in example graph.
func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Answer queries on the built-in four-vertex example graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adj, err := matrix.NewFromRows(demoRows)
			if err != nil {
				return err
			}
			t, err := a.build(adj, true)
			if err != nil {
				return err
			}
			return a.answer(cmd, t, nil)
		},
	}
	addPairFlags(cmd)

	return cmd
}

func addPairFlags(cmd *cobra.Command) {
	cmd.Flags().Int(flagFrom, 0, "source vertex (1-based)")
	cmd.Flags().Int(flagTo, 0, "target vertex (1-based)")
	cmd.MarkFlagsRequiredTogether(flagFrom, flagTo)
}

// answer resolves the query source and prints one line per query.
func (a *app) answer(cmd *cobra.Command, t *minplus.Table, queries []graphfile.Query) error {
	if cmd.Flags().Changed(flagFrom) {
		from, _ := cmd.Flags().GetInt(flagFrom)
		to, _ := cmd.Flags().GetInt(flagTo)
		queries = []graphfile.Query{{Source: from, Target: to}}
	}
	if len(queries) > 0 {
		for _, q := range queries {
			a.printQuery(t, q.Source, q.Target)
		}
		return nil
	}

	return a.interactive(t)
}

// interactive prompts for vertex pairs on stdin until EOF.
func (a *app) interactive(t *minplus.Table) error {
	fmt.Fprint(a.out, promptText)

	r := bufio.NewReader(a.in)
	var from, to int
	for {
		_, err := fmt.Fscan(r, &from, &to)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read vertex pair: %w", err)
		}
		a.printQuery(t, from, to)
	}
}

func (a *app) printQuery(t *minplus.Table, from, to int) {
	line := minplus.Query(t, from, to)
	a.log.Debug("query answered", slog.Int("from", from), slog.Int("to", to))
	fmt.Fprintf(a.out, "The shortest path between %d and %d is: %s\n", from, to, line)
}
