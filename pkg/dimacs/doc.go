// Package dimacs reads and writes the line-oriented DIMACS-style text
// format for the vertex/edge structure of a graph.
//
// # Format
//
// One directive per line, fields separated by whitespace:
//
//	p <max_vertex> <num_edges>   header, written first
//	n <u>                        vertex u is present
//	e <u> <v>                    edge between u and v (u != v)
//	c ...                        comment, ignored
//
// Identifiers are positive integers. The header reflects the graph at write
// time; by default the reader treats it as informational only. Pass
// [Strict] to reject identifiers exceeding the declared maximum.
//
// # Lossiness
//
// The round trip Read(Write(g)) reproduces g's vertex and edge sets
// exactly, but labels are never emitted: every graph produced by [Read]
// is unlabeled. Callers that need labels must carry them separately.
package dimacs
