// Package bellmanford: option and result types for the Bellman–Ford
// shortest-path implementation.
//
// Options:
//
//	– Source:  ID of the starting vertex (required, must be present in the graph).
//	– Epsilon: strict-improvement threshold for float64 relaxation (default 0).
//
// Result holds, for every vertex reachable from the source, the total path
// cost and the full source-inclusive vertex sequence of the chosen path.
package bellmanford

import (
	"errors"
	"sort"
)

// Sentinel errors returned by the Bellman–Ford implementation.
var (
	// ErrNoSource indicates that no source vertex was provided via Source().
	ErrNoSource = errors.New("bellmanford: source vertex not provided")

	// ErrNilGraph indicates that a nil *core.Digraph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEmptyGraph indicates that the graph contains no vertices.
	ErrEmptyGraph = errors.New("bellmanford: graph has no vertices")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable
	// from the source, making shortest paths undefined. The computation
	// produces no partial result in this case.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")

	// ErrBadEpsilon indicates that WithEpsilon was given a negative value.
	ErrBadEpsilon = errors.New("bellmanford: Epsilon must be non-negative")
)

// Options configures the behavior of BellmanFord.
//
// Source  – starting vertex ID (required; negative means "unset").
// Epsilon – a relaxation only counts as an improvement when it lowers the
// distance by strictly more than Epsilon. Guards float64 accumulation noise
// from being mistaken for a negative cycle. Must be ≥ 0. Default 0.
type Options struct {
	Source  int
	Epsilon float64
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the starting vertex ID. Must be called; BellmanFord returns
// ErrNoSource otherwise.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithEpsilon sets the strict-improvement threshold for relaxation.
// Must pass a non-negative value; negative values cause ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			// Panic to signal invalid configuration early, in line with the
			// option-constructor contract used across pathviz.
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:  -1 (unset; BellmanFord validates and rejects).
//   - Epsilon: 0 (any strict decrease counts as an improvement).
func DefaultOptions() Options {
	return Options{
		Source:  -1,
		Epsilon: 0,
	}
}

// Result is the outcome of one BellmanFord run for a fixed source: a pure,
// disposable snapshot. It is never updated incrementally — mutate the graph
// and recompute instead.
//
// Both maps contain an entry for every vertex reachable from Source,
// including Source itself (cost 0, path [Source]). Unreachable vertices are
// absent, not present-with-infinity.
type Result struct {
	// Source is the vertex all costs and paths are measured from.
	Source int

	// Dist maps a reachable vertex to the total cost of its shortest path.
	// Costs may be negative.
	Dist map[int]float64

	// Path maps a reachable vertex to the full vertex sequence of its
	// shortest path, source-inclusive: Path[v][0] == Source and
	// Path[v][len-1] == v.
	Path map[int][]int
}

// Reachable returns the IDs of all reachable vertices in ascending order.
// Complexity: O(V log V).
func (r *Result) Reachable() []int {
	ids := make([]int, 0, len(r.Dist))
	for v := range r.Dist {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// PathLen returns the number of vertices on the recorded path to v, or 0
// when v is unreachable. A missing entry deliberately reads as "empty path"
// rather than an error; the insertion heuristic in package reach depends on
// that convention.
// Complexity: O(1).
func (r *Result) PathLen(v int) int {
	return len(r.Path[v])
}
