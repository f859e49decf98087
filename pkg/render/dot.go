package render

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/toda-lab/simpgraph/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Name is the DOT graph identifier. Empty means "G".
	Name string

	// GraphAttrs are graph-level Graphviz attributes (e.g. rankdir, bgcolor)
	// forwarded verbatim into the DOT header. Keys are emitted in sorted
	// order so output is deterministic.
	GraphAttrs map[string]string
}

// ToDOT converts a graph to Graphviz DOT format for undirected drawing.
// Vertices are emitted in ascending order and edges in canonical order, so
// equal graphs always produce identical DOT text.
//
// A vertex with a stored label is drawn with that label; otherwise its
// identifier is used. Edge labels are attached where present.
func ToDOT(g *graph.Graph, opts Options) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", name)
	buf.WriteString("  node [shape=circle];\n")
	for _, k := range slices.Sorted(maps.Keys(opts.GraphAttrs)) {
		fmt.Fprintf(&buf, "  %s=%q;\n", k, opts.GraphAttrs[k])
	}
	buf.WriteString("\n")

	for _, u := range g.Vertices() {
		label, ok, _ := g.VertexLabel(u)
		if !ok {
			label = strconv.Itoa(u)
		}
		fmt.Fprintf(&buf, "  %d [label=%q];\n", u, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if label, ok, _ := g.EdgeLabel(e.U, e.V); ok {
			fmt.Fprintf(&buf, "  %d -- %d [label=%q];\n", e.U, e.V, label)
		} else {
			fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
