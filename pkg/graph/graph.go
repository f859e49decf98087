package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrSelfLoop is returned by [Graph.AddEdge] and [Graph.AddLabeledEdge]
	// when both endpoints are the same vertex. Simple graphs never contain
	// loops, and a rejected call leaves the graph unchanged.
	ErrSelfLoop = errors.New("edge endpoints must differ")

	// ErrUnknownVertex is returned by query operations when the vertex is
	// not a member of the graph. Discard operations never return it - they
	// are defined as no-ops on absent vertices.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrUnknownEdge is returned by [Graph.EdgeLabel] when no edge connects
	// the two vertices.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrEmptyGraph is returned by [Graph.MaxVertex] when the graph has no
	// vertices.
	ErrEmptyGraph = errors.New("graph has no vertices")
)

// Edge is an unordered pair of distinct vertices in canonical form: U < V.
// Use [NewEdge] to build one from endpoints in either order. Canonical form
// makes edges directly comparable and usable as map keys.
type Edge struct {
	U int // Smaller endpoint
	V int // Larger endpoint
}

// NewEdge returns the canonical edge between u and v, swapping the endpoints
// if necessary so that U < V. It does not check u != v - [Graph.AddEdge]
// enforces that.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// Graph is a mutable, unordered, loop-free simple graph: a set of int
// vertices and a set of canonical edges, each side optionally carrying a
// string label. At most one edge exists between any two vertices.
//
// The adjacency index is maintained incrementally on every mutation and
// always equals the projection of the edge set onto each endpoint.
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	vertices     map[int]struct{}
	edges        map[Edge]struct{}
	adj          map[int]map[int]struct{} // vertex -> neighbor set
	vertexLabels map[int]string
	edgeLabels   map[Edge]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		vertices:     make(map[int]struct{}),
		edges:        make(map[Edge]struct{}),
		adj:          make(map[int]map[int]struct{}),
		vertexLabels: make(map[int]string),
		edgeLabels:   make(map[Edge]string),
	}
}

// AddVertex adds u to the vertex set without a label.
// Adding a vertex that is already present is a no-op: membership, counts and
// any existing label are left untouched.
func (g *Graph) AddVertex(u int) {
	if _, ok := g.vertices[u]; ok {
		return
	}
	g.vertices[u] = struct{}{}
	g.adj[u] = make(map[int]struct{})
}

// AddLabeledVertex adds u with the given label. The label is recorded only
// when this call is the one that introduces the vertex - re-adding a present
// vertex never overwrites its label, even with a different label argument.
func (g *Graph) AddLabeledVertex(u int, label string) {
	if _, ok := g.vertices[u]; ok {
		return
	}
	g.AddVertex(u)
	g.vertexLabels[u] = label
}

// AddEdge adds the canonical edge between u and v without a label.
// Returns ErrSelfLoop if u == v, leaving the graph exactly as it was.
// Absent endpoints are added to the vertex set, unlabeled. If the edge is
// already present, any stored edge label is cleared - unlike vertex
// re-adding, repeat edge insertion always replaces the label state.
func (g *Graph) AddEdge(u, v int) error {
	return g.addEdge(u, v, "", false)
}

// AddLabeledEdge adds the canonical edge between u and v carrying label.
// Returns ErrSelfLoop if u == v, leaving the graph exactly as it was.
// If the edge is already present the label is overwritten and membership,
// counts and the vertex set are unaffected.
func (g *Graph) AddLabeledEdge(u, v int, label string) error {
	return g.addEdge(u, v, label, true)
}

func (g *Graph) addEdge(u, v int, label string, labeled bool) error {
	if u == v {
		return ErrSelfLoop
	}
	e := NewEdge(u, v)
	if _, ok := g.edges[e]; !ok {
		g.AddVertex(e.U)
		g.AddVertex(e.V)
		g.edges[e] = struct{}{}
		g.adj[e.U][e.V] = struct{}{}
		g.adj[e.V][e.U] = struct{}{}
	}
	if labeled {
		g.edgeLabels[e] = label
	} else {
		delete(g.edgeLabels, e)
	}
	return nil
}

// DiscardVertex removes u from the graph along with every incident edge,
// the labels of those edges, and u's own label. The adjacency entries of
// u's former neighbors shrink accordingly. Discarding an absent vertex is
// a no-op - it never fails.
func (g *Graph) DiscardVertex(u int) {
	if _, ok := g.vertices[u]; !ok {
		return
	}
	for v := range g.adj[u] {
		e := NewEdge(u, v)
		delete(g.edges, e)
		delete(g.edgeLabels, e)
		delete(g.adj[v], u)
	}
	delete(g.adj, u)
	delete(g.vertices, u)
	delete(g.vertexLabels, u)
}

// DiscardEdge removes the canonical edge between u and v and its label.
// Both endpoints stay in the vertex set. Discarding an absent edge is a
// no-op - it never fails.
func (g *Graph) DiscardEdge(u, v int) {
	e := NewEdge(u, v)
	if _, ok := g.edges[e]; !ok {
		return
	}
	delete(g.edges, e)
	delete(g.edgeLabels, e)
	delete(g.adj[e.U], e.V)
	delete(g.adj[e.V], e.U)
}

// Clear resets the graph to the empty state in place.
// Safe to call on an already-empty graph.
func (g *Graph) Clear() {
	g.vertices = make(map[int]struct{})
	g.edges = make(map[Edge]struct{})
	g.adj = make(map[int]map[int]struct{})
	g.vertexLabels = make(map[int]string)
	g.edgeLabels = make(map[Edge]string)
}

// HasVertex reports whether u is a member of the vertex set.
func (g *Graph) HasVertex(u int) bool {
	_, ok := g.vertices[u]
	return ok
}

// HasEdge reports whether an edge connects u and v, in either argument order.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edges[NewEdge(u, v)]
	return ok
}

// Vertices returns all vertices in ascending order.
// Sorting makes the enumeration deterministic across calls.
func (g *Graph) Vertices() []int {
	return slices.Sorted(maps.Keys(g.vertices))
}

// Edges returns all canonical edges sorted by (U, V).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})
	return edges
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// MaxVertex returns the greatest vertex identifier currently present.
// It is a property of the current vertex set, not a high-water mark: it
// shrinks when the maximal vertex is discarded. Returns ErrEmptyGraph when
// the graph has no vertices.
func (g *Graph) MaxVertex() (int, error) {
	if len(g.vertices) == 0 {
		return 0, ErrEmptyGraph
	}
	first := true
	var max int
	for u := range g.vertices {
		if first || u > max {
			max = u
			first = false
		}
	}
	return max, nil
}

// Neighbors returns the vertices adjacent to u, in ascending order.
// Returns ErrUnknownVertex if u is not a member.
func (g *Graph) Neighbors(u int) ([]int, error) {
	if _, ok := g.vertices[u]; !ok {
		return nil, ErrUnknownVertex
	}
	return slices.Sorted(maps.Keys(g.adj[u])), nil
}

// Degree returns the number of edges incident to u.
// Returns ErrUnknownVertex if u is not a member.
func (g *Graph) Degree(u int) (int, error) {
	if _, ok := g.vertices[u]; !ok {
		return 0, ErrUnknownVertex
	}
	return len(g.adj[u]), nil
}

// VertexLabel returns the label stored for u and whether one exists.
// Returns ErrUnknownVertex if u is not a member.
func (g *Graph) VertexLabel(u int) (string, bool, error) {
	if _, ok := g.vertices[u]; !ok {
		return "", false, ErrUnknownVertex
	}
	label, ok := g.vertexLabels[u]
	return label, ok, nil
}

// EdgeLabel returns the label stored for the edge between u and v, in either
// argument order, and whether one exists. Returns ErrUnknownEdge if no such
// edge is present.
func (g *Graph) EdgeLabel(u, v int) (string, bool, error) {
	e := NewEdge(u, v)
	if _, ok := g.edges[e]; !ok {
		return "", false, ErrUnknownEdge
	}
	label, ok := g.edgeLabels[e]
	return label, ok, nil
}

// Equal reports structural equality: the vertex sets and canonical edge sets
// match exactly. Labels are excluded - two graphs with identical structure
// but different labels are equal.
func (g *Graph) Equal(o *Graph) bool {
	if o == nil {
		return false
	}
	return maps.Equal(g.vertices, o.vertices) && maps.Equal(g.edges, o.edges)
}

// Clone returns a deep copy of the graph, including labels.
// Mutations of the copy never affect the original.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices:     maps.Clone(g.vertices),
		edges:        maps.Clone(g.edges),
		adj:          make(map[int]map[int]struct{}, len(g.adj)),
		vertexLabels: maps.Clone(g.vertexLabels),
		edgeLabels:   maps.Clone(g.edgeLabels),
	}
	for u, nbrs := range g.adj {
		c.adj[u] = maps.Clone(nbrs)
	}
	return c
}
