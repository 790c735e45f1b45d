// Package reach: types and sentinel errors for the reachability analyses.
package reach

import "errors"

// Sentinel errors for reachability operations.
var (
	// ErrNilResult indicates a nil *bellmanford.Result was supplied.
	ErrNilResult = errors.New("reach: result is nil")

	// ErrEmptyResult indicates no vertex is reachable besides the source.
	ErrEmptyResult = errors.New("reach: no vertex reachable besides the source")

	// ErrNoCandidate indicates the insertion-candidate search found no vertex
	// whose out-neighbor set is disjoint from the pivot's. Recoverable: the
	// caller reports it and proceeds.
	ErrNoCandidate = errors.New("reach: no vertex with out-neighbors disjoint from pivot")
)

// CostedNode pairs a vertex ID with its shortest-path cost from the source.
type CostedNode struct {
	// ID is the vertex identifier.
	ID int

	// Cost is the total weight of the vertex's shortest path; may be negative.
	Cost float64
}

// Candidate is the outcome of an insertion-candidate search.
type Candidate struct {
	// ID is the chosen anchor vertex.
	ID int

	// PathLen is the hop length (vertex count) of the candidate's shortest
	// path from the source at decision time; 0 means it was unreachable and
	// won by default.
	PathLen int
}
