// Package graph provides a mutable, unordered, loop-free simple graph with
// optional string labels on vertices and edges.
//
// # Overview
//
// A [Graph] is a set of int vertices plus a set of unordered edges between
// distinct vertices. Edges are canonicalized as (min, max) pairs, so
// AddEdge(4, 1) and AddEdge(1, 4) refer to the same edge. At most one edge
// exists between any two vertices and self-loops are rejected.
//
// # Basic Usage
//
// Create a graph with [New], then build it with [Graph.AddVertex] and
// [Graph.AddEdge]. Adding an edge adds absent endpoints automatically:
//
//	g := graph.New()
//	g.AddEdge(4, 1)
//	g.AddEdge(4, 3)
//	g.Vertices()     // [1 3 4]
//	g.Neighbors(4)   // [1 3]
//
// Discard operations are idempotent: discarding an absent vertex or edge is
// a defined no-op, never an error. Discarding a vertex cascades to every
// incident edge.
//
// # Labels
//
// [Graph.AddLabeledVertex] and [Graph.AddLabeledEdge] attach a label at
// insertion. Vertex labels are fixed at first insertion and never changed by
// later add calls; edge labels are replaced on every repeat insertion. A
// label lives exactly as long as its vertex or edge. Labels are excluded
// from [Graph.Equal], which compares structure only.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines share one instance; separate instances share
// no state.
//
// # Related Packages
//
// The [dimacs] package serializes the vertex/edge structure to a
// line-oriented text format, and the [render] package draws graphs through
// Graphviz.
//
// [dimacs]: github.com/toda-lab/simpgraph/pkg/dimacs
// [render]: github.com/toda-lab/simpgraph/pkg/render
package graph
