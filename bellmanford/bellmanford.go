// Package bellmanford implements the Bellman–Ford shortest-path algorithm.
//
// The algorithm relaxes every edge up to |V|−1 times, which is sufficient for
// any simple shortest path, then performs one extra detection round: an edge
// that can still be improved proves a negative-weight cycle is reachable from
// the source, and the whole computation fails with ErrNegativeCycle.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Up to V−1 full passes over the edge list, each O(E).
//   - One additional O(E) detection pass.
//   - Early exit when a pass changes nothing frequently beats the bound.
//   - Space: O(V + E)
//   - O(V) distance and predecessor tables.
//   - O(E) sorted snapshot of the edge list.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathviz/core"
)

// BellmanFord computes shortest distances and paths from the source vertex
// (Options.Source) to all reachable vertices in the directed weighted graph
// g. Negative edge weights are permitted; a negative-weight cycle reachable
// from the source is reported as ErrNegativeCycle with no partial result.
//
// Returns:
//
//   - res: a *Result holding cost and source-inclusive path for every
//     reachable vertex (the source itself included at cost 0).
//   - err: error if inputs are invalid or a negative cycle is detected.
//
// Preconditions and validation (in order):
//  1. Source must be provided and non-negative (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain at least one vertex (ErrEmptyGraph).
//  4. g must contain Source (ErrVertexNotFound).
//
// Side effects: none; BellmanFord is a pure function of (g, opts).
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E)
func BellmanFord(g *core.Digraph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source < 0 {
		return nil, ErrNoSource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate graph is non-empty.
	v := g.VertexCount()
	if v == 0 {
		return nil, ErrEmptyGraph
	}

	// 5) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	// 6) Initialize runner state and execute the three phases.
	r := &runner{g: g, options: cfg, vertexCount: v}
	r.init()
	r.relaxRounds()
	if err := r.detect(); err != nil {
		return nil, err
	}

	// 7) Assemble the immutable result snapshot.
	return r.collect(), nil
}

// runner holds the mutable state for a single Bellman–Ford execution.
type runner struct {
	g           *core.Digraph
	options     Options
	vertexCount int
	edges       []core.Edge // sorted (From, To) snapshot; relaxation order
	dist        []float64   // dist[v] = best-known cost from Source, +Inf if none
	prev        []int       // prev[v] = predecessor on the best path, -1 if none
}

// init sets up the distance and predecessor tables and snapshots the edge
// list once; all relaxation rounds iterate the same deterministic order.
func (r *runner) init() {
	// 1) dist[v] = +∞ and prev[v] = -1 for all vertices v.
	r.dist = make([]float64, r.vertexCount)
	r.prev = make([]int, r.vertexCount)
	for i := 0; i < r.vertexCount; i++ {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}

	// 2) Distance to the source is zero.
	r.dist[r.options.Source] = 0

	// 3) Snapshot edges sorted by (From, To) for reproducible relaxation.
	r.edges = r.g.Edges()
}

// relaxRounds performs up to V−1 full relaxation passes over the edge list,
// exiting early once a pass changes nothing. After it returns, dist holds
// final shortest costs unless a reachable negative cycle exists.
func (r *runner) relaxRounds() {
	var changed bool
	for round := 1; round < r.vertexCount; round++ {
		changed = false
		for _, e := range r.edges {
			if r.relax(e) {
				changed = true
			}
		}
		// A pass with no improvement means all distances are stable.
		if !changed {
			return
		}
	}
}

// relax attempts to improve the distance to e.To via e. Returns true when
// the distance was lowered by strictly more than Epsilon.
func (r *runner) relax(e core.Edge) bool {
	// Skip edges whose tail has no known path yet: +∞ never improves anything.
	if math.IsInf(r.dist[e.From], 1) {
		return false
	}

	candidate := r.dist[e.From] + e.Weight
	if candidate < r.dist[e.To]-r.options.Epsilon {
		r.dist[e.To] = candidate
		r.prev[e.To] = e.From

		return true
	}

	return false
}

// detect runs the single extra pass required by the algorithm: any edge that
// can still be improved after V−1 rounds lies on (or is reachable from) a
// negative-weight cycle, so the whole computation is rejected.
func (r *runner) detect() error {
	for _, e := range r.edges {
		if math.IsInf(r.dist[e.From], 1) {
			continue
		}
		if r.dist[e.From]+e.Weight < r.dist[e.To]-r.options.Epsilon {
			// Surface the offending edge; the caller treats this as a
			// top-level failure of the entire analysis.
			return fmt.Errorf("%w: edge %d→%d weight=%g still improves", ErrNegativeCycle, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// collect materializes the Result: cost and reconstructed path for every
// vertex with a finite distance. Paths are rebuilt by walking predecessors
// back to the source and reversing in place.
func (r *runner) collect() *Result {
	res := &Result{
		Source: r.options.Source,
		Dist:   make(map[int]float64, r.vertexCount),
		Path:   make(map[int][]int, r.vertexCount),
	}

	var path []int
	for v := 0; v < r.vertexCount; v++ {
		if math.IsInf(r.dist[v], 1) {
			continue // unreachable vertices are absent, not infinite
		}
		res.Dist[v] = r.dist[v]

		// Walk prev back to the source, then reverse.
		path = nil
		for u := v; u != -1; u = r.prev[u] {
			path = append(path, u)
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		res.Path[v] = path
	}

	return res
}
