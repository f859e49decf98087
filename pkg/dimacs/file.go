package dimacs

import (
	"fmt"
	"os"

	"github.com/toda-lab/simpgraph/pkg/graph"
)

// WriteFile writes g in DIMACS-style form to a file at path.
// The file is created with 0644 permissions.
func WriteFile(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads a DIMACS-style file at path and returns the decoded graph.
// It returns the same parse errors as [Read].
func ReadFile(path string, opts ...Option) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, opts...)
}
