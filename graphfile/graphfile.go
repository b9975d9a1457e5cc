package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tropath/matrix"
)

// Sentinel errors returned by graphfile.
var (
	// ErrEmptyAdjacency indicates a document without adjacency rows.
	ErrEmptyAdjacency = errors.New("graphfile: adjacency is empty")

	// ErrBadCell indicates an adjacency cell that is neither an integer nor
	// an Unreachable marker.
	ErrBadCell = errors.New("graphfile: invalid adjacency cell")
)

// unreachableWords are the scalar spellings accepted for Unreachable.
var unreachableWords = map[string]struct{}{
	"inf": {}, ".inf": {}, "∞": {}, "unreachable": {},
}

// Query is a 1-based (source, target) vertex pair.
type Query struct {
	Source int `yaml:"source"`
	Target int `yaml:"target"`
}

// Graph is a decoded document.
type Graph struct {
	Adjacency *matrix.Dense
	Queries   []Query
}

// document is the wire form read by Decode. Cells stay as raw nodes so null
// and textual markers can be told apart from integers.
type document struct {
	Sentinel  *int64        `yaml:"sentinel"`
	Adjacency [][]yaml.Node `yaml:"adjacency"`
	Queries   []Query       `yaml:"queries"`
}

// encoded is the wire form written by Encode; nil cells render as null.
type encoded struct {
	Adjacency [][]*int64 `yaml:"adjacency,flow"`
	Queries   []Query    `yaml:"queries,omitempty"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode reads one YAML document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyAdjacency
		}
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if len(doc.Adjacency) == 0 {
		return nil, ErrEmptyAdjacency
	}

	sentinel := matrix.Sentinel
	if doc.Sentinel != nil {
		sentinel = *doc.Sentinel
	}

	rows := make([][]int64, len(doc.Adjacency))
	var (
		i, j int
		v    int64
		err  error
	)
	for i = range doc.Adjacency {
		rows[i] = make([]int64, len(doc.Adjacency[i]))
		for j = range doc.Adjacency[i] {
			v, err = cellValue(&doc.Adjacency[i][j], sentinel)
			if err != nil {
				return nil, fmt.Errorf("graphfile: adjacency[%d][%d] (line %d): %w",
					i, j, doc.Adjacency[i][j].Line, err)
			}
			rows[i][j] = v
		}
	}

	adj, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}

	return &Graph{Adjacency: adj, Queries: doc.Queries}, nil
}

// cellValue maps a YAML scalar to a raw weight, with matrix.Sentinel
// standing for Unreachable.
func cellValue(n *yaml.Node, sentinel int64) (int64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, ErrBadCell
	}
	if n.ShortTag() == "!!null" {
		return matrix.Sentinel, nil
	}
	if _, ok := unreachableWords[strings.ToLower(n.Value)]; ok {
		return matrix.Sentinel, nil
	}

	var v int64
	if err := n.Decode(&v); err != nil {
		return 0, fmt.Errorf("%q: %w", n.Value, ErrBadCell)
	}
	if v == sentinel {
		return matrix.Sentinel, nil
	}

	return v, nil
}

// Encode writes g as a YAML document that Decode reads back unchanged.
func Encode(w io.Writer, g *Graph) error {
	if g == nil || g.Adjacency == nil {
		return ErrEmptyAdjacency
	}

	raw := g.Adjacency.Raw()
	out := encoded{Adjacency: make([][]*int64, len(raw)), Queries: g.Queries}
	for i := range raw {
		out.Adjacency[i] = make([]*int64, len(raw[i]))
		for j := range raw[i] {
			if raw[i][j] == matrix.Sentinel {
				continue
			}
			v := raw[i][j]
			out.Adjacency[i][j] = &v
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}
