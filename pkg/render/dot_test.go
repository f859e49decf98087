package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toda-lab/simpgraph/pkg/graph"
)

func TestToDOT(t *testing.T) {
	g := graph.New()
	g.AddLabeledVertex(1, "one")
	if err := g.AddLabeledEdge(1, 2, "link"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(2, 3); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(g, Options{})

	want := `graph "G" {
  node [shape=circle];

  1 [label="one"];
  2 [label="2"];
  3 [label="3"];

  1 -- 2 [label="link"];
  2 -- 3;
}
`
	if dot != want {
		t.Errorf("ToDOT() = %q, want %q", dot, want)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	build := func(pairs ...[2]int) *graph.Graph {
		g := graph.New()
		for _, p := range pairs {
			if err := g.AddEdge(p[0], p[1]); err != nil {
				t.Fatal(err)
			}
		}
		return g
	}

	// Same structure inserted in different orders renders identically.
	a := build([2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})
	b := build([2]int{3, 1}, [2]int{3, 2}, [2]int{2, 1})
	if ToDOT(a, Options{}) != ToDOT(b, Options{}) {
		t.Error("ToDOT() differs for structurally equal graphs")
	}
}

func TestToDOTGraphAttrs(t *testing.T) {
	g := graph.New()
	g.AddVertex(1)

	dot := ToDOT(g, Options{
		Name:       "demo",
		GraphAttrs: map[string]string{"rankdir": "LR", "bgcolor": "white"},
	})

	if !strings.HasPrefix(dot, "graph \"demo\" {\n") {
		t.Errorf("ToDOT() header = %q", dot[:min(len(dot), 20)])
	}
	// Attributes appear in sorted key order.
	bg := strings.Index(dot, `bgcolor="white";`)
	rd := strings.Index(dot, `rankdir="LR";`)
	if bg < 0 || rd < 0 || bg > rd {
		t.Errorf("ToDOT() attrs out of order or missing:\n%s", dot)
	}
}

func TestWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "g.svg")

	if err := WriteArtifact(path, []byte("<svg/>")); err != nil {
		t.Fatalf("WriteArtifact() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("artifact = %q, want %q", data, "<svg/>")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("artifact dir has %d entries, want 1", len(entries))
	}

	// Overwrite is allowed.
	if err := WriteArtifact(path, []byte("v2")); err != nil {
		t.Fatalf("WriteArtifact() overwrite error = %v", err)
	}
}
