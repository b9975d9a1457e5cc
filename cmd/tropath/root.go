package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tropath/graphfile"
	"github.com/katalvlaran/tropath/matrix"
	"github.com/katalvlaran/tropath/minplus"
)

// app carries per-invocation state shared by all subcommands.
type app struct {
	v      *viper.Viper
	cfg    *Config
	log    *slog.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// newRootCmd wires the command tree to the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{v: newViper(), in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   ModuleName,
		Short: "All-pairs shortest paths by min-plus matrix composition",
		Long: `Build the min-plus distance table of a weighted digraph and answer
shortest-path queries against it.

Graphs are YAML documents with an "adjacency" matrix (~ for no edge) and
optional "queries". Vertices are 1-based.

Examples:
  tropath demo --from 1 --to 4
  tropath path --graph graph.yaml
  tropath table --graph graph.yaml --step 2
  tropath random --vertices 6 --seed 7 > graph.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := NewConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = cfg.Logger(a.errOut)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String(OptionConfig, "", "config file (YAML)")
	pf.String(OptionGraph, DefaultOptionGraph, "graph document (YAML)")
	pf.String(OptionLogLevel, DefaultOptionLogLevel, "log level: debug, info, warn, error")
	pf.Bool(OptionStrict, DefaultOptionStrict, "reject non-zero diagonals and negative weights")
	pf.String(OptionNoPathText, DefaultOptionNoPathText, "text printed instead of the raw sentinel for unreachable pairs")

	root.AddCommand(
		newPathCmd(a),
		newDemoCmd(a),
		newTableCmd(a),
		newRandomCmd(a),
	)

	return root
}

// loadGraph reads the configured graph document.
func (a *app) loadGraph() (*graphfile.Graph, error) {
	if a.cfg.Graph == "" {
		return nil, fmt.Errorf("no graph document: set --%s or TROPATH_GRAPH", OptionGraph)
	}
	g, err := graphfile.Load(a.cfg.Graph)
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded",
		slog.String("path", a.cfg.Graph),
		slog.Int("vertices", g.Adjacency.Rows()),
		slog.Int("queries", len(g.Queries)))

	return g, nil
}

// build constructs the distance table under the configured options and,
// when verify is set, cross-checks the final step against Floyd–Warshall.
func (a *app) build(adj *matrix.Dense, verify bool) (*minplus.Table, error) {
	opts := []minplus.Option{minplus.WithLogger(a.log)}
	if a.cfg.Strict {
		opts = append(opts, minplus.WithStrict())
	}
	if a.cfg.NoPathText != "" {
		opts = append(opts, minplus.WithUnreachableText(a.cfg.NoPathText))
	}

	t, err := minplus.Build(adj, opts...)
	if err != nil {
		return nil, err
	}
	if !verify || t.Steps() == 0 {
		return t, nil
	}

	ref := adj.Clone()
	if err = matrix.FloydWarshall(ref); err != nil {
		return nil, err
	}
	if !t.Final().Equal(ref) {
		return nil, fmt.Errorf("verify: min-plus table disagrees with Floyd–Warshall:\n%s\nwant\n%s", t.Final(), ref)
	}
	a.log.Info("table verified against Floyd–Warshall", slog.Int("steps", t.Steps()))

	return t, nil
}
