package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/toda-lab/simpgraph/pkg/graph"
)

func TestDegreeSummary(t *testing.T) {
	g := graph.New()
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 3); err != nil {
		t.Fatal(err)
	}
	g.AddVertex(9)

	minDeg, maxDeg, isolated := degreeSummary(g)
	if minDeg != 0 || maxDeg != 2 || isolated != 1 {
		t.Errorf("degreeSummary() = %d, %d, %d, want 0, 2, 1", minDeg, maxDeg, isolated)
	}
}

func TestReadGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.col")
	if err := os.WriteFile(path, []byte("p 2 1\ne 1 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := readGraphFile(path, false)
	if err != nil {
		t.Fatalf("readGraphFile() error = %v", err)
	}
	if g.VertexCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("readGraphFile() = %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	}

	// Strict mode surfaces header violations.
	bad := filepath.Join(t.TempDir(), "bad.col")
	if err := os.WriteFile(bad, []byte("p 1 1\ne 1 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readGraphFile(bad, true); err == nil {
		t.Error("readGraphFile(strict) accepted out-of-range vertex")
	}
	if _, err := readGraphFile(bad, false); err != nil {
		t.Errorf("readGraphFile(lenient) error = %v, want nil", err)
	}
}
