// Package render draws graphs through the Graphviz engine.
//
// [ToDOT] converts a graph's vertex, edge and label state into DOT text for
// undirected drawing; [SVG] and [PNG] hand the DOT to Graphviz
// (goccy/go-graphviz) and return the rendered bytes. Engine failures are
// returned to the caller unmodified - this package adds no rendering logic
// of its own beyond the DOT translation.
//
// Graph-level Graphviz attributes supplied via [Options.GraphAttrs] are
// forwarded verbatim, so callers can tune layout (rankdir, splines, ...)
// without this package knowing the attribute vocabulary.
package render
