package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toda-lab/simpgraph/pkg/dimacs"
	"github.com/toda-lab/simpgraph/pkg/graph"
)

// newInfoCmd creates the info command for inspecting graph files.
func newInfoCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Show vertex and edge statistics for a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject identifiers exceeding the declared header maximum")

	return cmd
}

func runInfo(ctx context.Context, input string, strict bool) error {
	logger := loggerFromContext(ctx)
	logger.Debug("parsing graph file", "file", input, "strict", strict)

	g, err := readGraphFile(input, strict)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(input))
	printKeyValue("vertices", fmt.Sprintf("%d", g.VertexCount()))
	printKeyValue("edges", fmt.Sprintf("%d", g.EdgeCount()))

	if g.VertexCount() == 0 {
		return nil
	}

	max, err := g.MaxVertex()
	if err != nil {
		return err
	}
	printKeyValue("max vertex", fmt.Sprintf("%d", max))

	minDeg, maxDeg, isolated := degreeSummary(g)
	printKeyValue("degree range", fmt.Sprintf("%d-%d", minDeg, maxDeg))
	printKeyValue("isolated", fmt.Sprintf("%d", isolated))

	return nil
}

// degreeSummary scans all vertices once for the degree range and the number
// of isolated vertices.
func degreeSummary(g *graph.Graph) (minDeg, maxDeg, isolated int) {
	first := true
	for _, u := range g.Vertices() {
		deg, err := g.Degree(u)
		if err != nil {
			continue
		}
		if first {
			minDeg, maxDeg = deg, deg
			first = false
		}
		if deg < minDeg {
			minDeg = deg
		}
		if deg > maxDeg {
			maxDeg = deg
		}
		if deg == 0 {
			isolated++
		}
	}
	return minDeg, maxDeg, isolated
}

// readGraphFile parses a DIMACS-style file, optionally in strict mode.
func readGraphFile(path string, strict bool) (*graph.Graph, error) {
	var opts []dimacs.Option
	if strict {
		opts = append(opts, dimacs.Strict())
	}
	g, err := dimacs.ReadFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}
