// Package core defines the Digraph type shared by every pathviz package:
// a directed, weighted, in-memory graph whose vertices are dense integer
// identifiers assigned consecutively from 0.
//
// All mutating and reading APIs take a single sync.RWMutex internally, so a
// Digraph may be read from multiple goroutines while another mutates it.
//
// This file declares Edge, Digraph, sentinel errors, and the NewDigraph
// constructor.
//
// Errors:
//
//	ErrNilGraph         - a nil *Digraph was passed to a consumer.
//	ErrEmptyGraph       - the graph contains no vertices.
//	ErrVertexNotFound   - an operation referenced a non-existent vertex.
//	ErrNegativeVertexID - an edge-list entry used a negative vertex ID.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Digraph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyGraph indicates the graph contains no vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeVertexID indicates an edge-list entry used a negative vertex ID.
	ErrNegativeVertexID = errors.New("core: vertex ID must be non-negative")
)

// Edge represents a directed connection between two vertices.
//
// From and To are dense vertex IDs; Weight may be negative — negative-weight
// tolerance is the reason pathviz exists.
type Edge struct {
	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int

	// Weight is the real-valued cost of traversing From→To.
	Weight float64
}

// Digraph is the core in-memory graph data structure.
//
// Vertices are identified by dense, contiguous integers: the first vertex is
// 0, the next is 1, and so on. AddVertex always assigns the current vertex
// count as the new ID, which keeps the identifier space contiguous — an
// invariant the vertex-insertion heuristic in package reach relies on.
//
// The graph is simple (at most one edge per ordered pair) and directed.
// Self-loops are permitted. Re-adding an existing (from, to) pair overwrites
// the stored weight rather than failing.
type Digraph struct {
	mu sync.RWMutex // guards out and edgeCount

	// out[from][to] = weight. len(out) is the vertex count; the slice index
	// doubles as the vertex ID, which is what keeps IDs dense.
	out []map[int]float64

	edgeCount int
}

// NewDigraph creates an empty Digraph.
// Complexity: O(1)
func NewDigraph() *Digraph {
	return &Digraph{out: make([]map[int]float64, 0)}
}

// FromEdgeList builds a Digraph from literal (from, to, weight) triples.
//
// Vertex IDs are created implicitly: every ID from 0 through the maximum ID
// mentioned by any edge exists in the returned graph, so the identifier
// space is dense even when the edge list skips an ID.
// Returns ErrNegativeVertexID if any edge references a negative ID.
// Complexity: O(V + E)
func FromEdgeList(edges []Edge) (*Digraph, error) {
	g := NewDigraph()

	// 1) Find the highest vertex ID mentioned; reject negatives.
	maxID := -1
	for _, e := range edges {
		if e.From < 0 || e.To < 0 {
			return nil, ErrNegativeVertexID
		}
		if e.From > maxID {
			maxID = e.From
		}
		if e.To > maxID {
			maxID = e.To
		}
	}

	// 2) Materialize vertices 0..maxID so the ID space is contiguous.
	for i := 0; i <= maxID; i++ {
		g.AddVertex()
	}

	// 3) Insert the edges; endpoints are guaranteed to exist by step 2.
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
