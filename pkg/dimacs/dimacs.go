package dimacs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/toda-lab/simpgraph/pkg/graph"
)

var (
	// ErrMalformed is returned by [Read] for input it cannot accept:
	// unrecognized directives, wrong field counts, non-integer or
	// non-positive identifiers, self-loop edge lines, and - in strict
	// mode - identifiers exceeding the declared header maximum.
	// Errors wrapping it carry the 1-based line number.
	ErrMalformed = errors.New("malformed DIMACS input")

	// ErrBadVertex is returned by [Write] when the graph contains a vertex
	// identifier the format cannot express. DIMACS identifiers are positive
	// integers; the in-memory graph does not enforce that.
	ErrBadVertex = errors.New("vertex identifier must be positive")
)

// Option configures [Read].
type Option func(*reader)

// Strict makes Read validate the header: the header must be present exactly
// once, and every identifier on a later n or e line must not exceed the
// declared maximum. The default reader treats the header as informational,
// as most DIMACS tooling in the wild does.
func Strict() Option {
	return func(r *reader) { r.strict = true }
}

// Write serializes the vertex/edge structure of g to w in DIMACS-style form:
// a "p <max> <edges>" header, one "n <u>" line per vertex in ascending
// order, and one "e <u> <v>" line per canonical edge. Labels are never
// emitted - the format is lossy for labels and lossless for structure.
//
// Returns ErrBadVertex if g contains a non-positive vertex identifier.
func Write(g *graph.Graph, w io.Writer) error {
	for _, u := range g.Vertices() {
		if u <= 0 {
			return fmt.Errorf("vertex %d: %w", u, ErrBadVertex)
		}
	}

	bw := bufio.NewWriter(w)
	max := 0
	if g.VertexCount() > 0 {
		max, _ = g.MaxVertex()
	}
	fmt.Fprintf(bw, "p %d %d\n", max, g.EdgeCount())
	for _, u := range g.Vertices() {
		fmt.Fprintf(bw, "n %d\n", u)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "e %d %d\n", e.U, e.V)
	}
	return bw.Flush()
}

// Marshal serializes g to DIMACS-style bytes.
// See [Write] for the format.
func Marshal(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read parses DIMACS-style text from r into a new graph.
//
// Recognized directives are "p <max> <edges>", "n <u>" and "e <u> <v>".
// Edge lines add absent endpoints, so a graph round-trips even when its
// vertices are only declared implicitly. Comment lines starting with "c"
// and blank lines are ignored; any other directive is rejected - the policy
// is deterministic, not configurable.
//
// The resulting graph carries no labels. For any graph g,
// Read(Write(g)) is structurally equal to g.
func Read(r io.Reader, opts ...Option) (*graph.Graph, error) {
	rd := &reader{g: graph.New()}
	for _, opt := range opts {
		opt(rd)
	}

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		if err := rd.parseLine(sc.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if rd.strict && !rd.sawHeader {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	return rd.g, nil
}

type reader struct {
	g           *graph.Graph
	strict      bool
	sawHeader   bool
	declaredMax int
}

func (r *reader) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "c":
		return nil
	case "p":
		return r.parseHeader(fields)
	case "n":
		return r.parseVertex(fields)
	case "e":
		return r.parseEdge(fields)
	default:
		return fmt.Errorf("%w: unknown directive %q", ErrMalformed, fields[0])
	}
}

func (r *reader) parseHeader(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: header needs 2 fields, got %d", ErrMalformed, len(fields)-1)
	}
	if r.strict && r.sawHeader {
		return fmt.Errorf("%w: duplicate header", ErrMalformed)
	}
	max, err := strconv.Atoi(fields[1])
	if err != nil || max < 0 {
		return fmt.Errorf("%w: bad max vertex %q", ErrMalformed, fields[1])
	}
	if _, err := strconv.Atoi(fields[2]); err != nil {
		return fmt.Errorf("%w: bad edge count %q", ErrMalformed, fields[2])
	}
	r.sawHeader = true
	r.declaredMax = max
	return nil
}

func (r *reader) parseVertex(fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("%w: vertex line needs 1 field, got %d", ErrMalformed, len(fields)-1)
	}
	u, err := r.parseID(fields[1])
	if err != nil {
		return err
	}
	r.g.AddVertex(u)
	return nil
}

func (r *reader) parseEdge(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: edge line needs 2 fields, got %d", ErrMalformed, len(fields)-1)
	}
	u, err := r.parseID(fields[1])
	if err != nil {
		return err
	}
	v, err := r.parseID(fields[2])
	if err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: self-loop edge %d %d", ErrMalformed, u, v)
	}
	return r.g.AddEdge(u, v)
}

func (r *reader) parseID(s string) (int, error) {
	u, err := strconv.Atoi(s)
	if err != nil || u <= 0 {
		return 0, fmt.Errorf("%w: bad vertex identifier %q", ErrMalformed, s)
	}
	if r.strict && r.sawHeader && u > r.declaredMax {
		return 0, fmt.Errorf("%w: vertex %d exceeds declared maximum %d", ErrMalformed, u, r.declaredMax)
	}
	return u, nil
}
