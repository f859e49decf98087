package dimacs_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/toda-lab/simpgraph/pkg/dimacs"
	"github.com/toda-lab/simpgraph/pkg/graph"
)

func ExampleWrite() {
	g := graph.New()
	_ = g.AddEdge(4, 1)
	_ = g.AddEdge(4, 3)

	_ = dimacs.Write(g, os.Stdout)
	// Output:
	// p 4 2
	// n 1
	// n 3
	// n 4
	// e 1 4
	// e 3 4
}

func ExampleRead() {
	input := `c a triangle with one extra vertex
p 5 3
n 5
e 1 2
e 2 3
e 1 3
`
	g, err := dimacs.Read(strings.NewReader(input))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Vertices: [1 2 3 5]
	// Edges: 3
}

func ExampleRead_strict() {
	// Vertex 9 exceeds the declared maximum of 3.
	_, err := dimacs.Read(strings.NewReader("p 3 1\ne 1 9\n"), dimacs.Strict())
	fmt.Println(err)
	// Output:
	// line 2: malformed DIMACS input: vertex 9 exceeds declared maximum 3
}
