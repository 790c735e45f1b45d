// Package reach: implementations of the reachability statistics and the
// vertex-insertion heuristic.
//
// All selection loops iterate vertices in ascending ID order and keep the
// first strict maximum, which realizes the smallest-ID tie-break rule.

package reach

import (
	"sort"

	"github.com/katalvlaran/pathviz/bellmanford"
	"github.com/katalvlaran/pathviz/core"
)

// MostReachable returns the reachable vertex whose recorded shortest path
// has the greatest number of hops (vertex count), not the lowest cost.
// Ties are broken by smallest vertex ID.
//
// Returns ErrNilResult for a nil result and ErrEmptyResult when nothing is
// reachable besides the source itself.
// Complexity: O(V log V) for the sorted scan.
func MostReachable(res *bellmanford.Result) (int, error) {
	if res == nil {
		return 0, ErrNilResult
	}
	// Only the source present (or nothing at all) means there is no
	// "most reachable" vertex to speak of.
	if len(res.Dist) <= 1 {
		return 0, ErrEmptyResult
	}

	// Scan ascending; require a strict improvement to switch, so the
	// smallest ID among equals wins.
	best, bestLen := -1, 0
	for _, v := range res.Reachable() {
		if n := res.PathLen(v); n > bestLen {
			best, bestLen = v, n
		}
	}

	return best, nil
}

// SortByCostDesc returns (vertex, cost) pairs for every reachable vertex,
// ordered by cost, highest first. The sort is stable over the ascending-ID
// input order, so equal costs come out in ascending ID order. Each call
// builds a fresh slice; the result can be regenerated at will.
// Complexity: O(V log V).
func SortByCostDesc(res *bellmanford.Result) []CostedNode {
	if res == nil {
		return nil
	}

	out := make([]CostedNode, 0, len(res.Dist))
	for _, v := range res.Reachable() {
		out = append(out, CostedNode{ID: v, Cost: res.Dist[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost > out[j].Cost })

	return out
}

// InsertionCandidate searches for the vertex best placed to anchor a new
// vertex, relative to a pivot (typically the MostReachable vertex).
//
// The candidate set is every vertex whose out-neighbor set shares no member
// with the pivot's out-neighbor set. If that set is empty the search fails
// with ErrNoCandidate — a reportable finding, not a crash. Otherwise
// shortest paths from source are recomputed on the current graph and the
// candidate with the longest hop path wins; unreachable candidates count as
// hop length 0 rather than being excluded. Ties go to the smallest ID.
//
// Read-only: the graph is never mutated.
// Complexity: O(V·E) — dominated by the Bellman–Ford recomputation.
func InsertionCandidate(g *core.Digraph, source, pivot int) (Candidate, error) {
	// 1) Validate inputs.
	if g == nil {
		return Candidate{}, core.ErrNilGraph
	}
	if !g.HasVertex(source) || !g.HasVertex(pivot) {
		return Candidate{}, core.ErrVertexNotFound
	}

	// 2) Collect the pivot's out-neighbor set A.
	pivotOut, err := g.OutNeighbors(pivot)
	if err != nil {
		return Candidate{}, err
	}
	a := make(map[int]struct{}, len(pivotOut))
	for _, v := range pivotOut {
		a[v] = struct{}{}
	}

	// 3) Build the candidate set: vertices with out-neighbors disjoint from A.
	//    Vertices() is ascending, so candidates stays sorted.
	var candidates []int
	for _, v := range g.Vertices() {
		out, nErr := g.OutNeighbors(v)
		if nErr != nil {
			return Candidate{}, nErr
		}
		disjoint := true
		for _, n := range out {
			if _, hit := a[n]; hit {
				disjoint = false
				break
			}
		}
		if disjoint {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return Candidate{}, ErrNoCandidate
	}

	// 4) Recompute shortest paths for the current graph state.
	res, err := bellmanford.BellmanFord(g, bellmanford.Source(source))
	if err != nil {
		return Candidate{}, err
	}

	// 5) Pick the candidate with the longest hop path; unreachable ⇒ 0.
	//    Ascending iteration plus strict improvement gives the smallest-ID
	//    tie-break. The first candidate seeds the answer so an all-zero
	//    field still yields a deterministic winner.
	best := Candidate{ID: candidates[0], PathLen: res.PathLen(candidates[0])}
	for _, v := range candidates[1:] {
		if n := res.PathLen(v); n > best.PathLen {
			best = Candidate{ID: v, PathLen: n}
		}
	}

	return best, nil
}

// IntroduceVertex adds a new vertex and wires it by fixed policy: the new
// ID is the current vertex count, with edges source→new (weightIn) and
// new→sink (weightOut). The graph is mutated in place.
//
// The candidate search is deliberately not consulted here; selection is
// advisory while edge placement is policy, and the two are sequenced by the
// caller.
//
// Returns core.ErrVertexNotFound if source or sink does not already exist —
// checked before any mutation, so a failed call leaves the graph untouched.
// Complexity: O(1).
func IntroduceVertex(g *core.Digraph, source, sink int, weightIn, weightOut float64) (int, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}
	if !g.HasVertex(source) || !g.HasVertex(sink) {
		return 0, core.ErrVertexNotFound
	}

	id := g.AddVertex()
	if err := g.AddEdge(source, id, weightIn); err != nil {
		return 0, err
	}
	if err := g.AddEdge(id, sink, weightOut); err != nil {
		return 0, err
	}

	return id, nil
}

// AfterInsertion recomputes shortest paths on the mutated graph and returns
// the fresh result together with the sorted IDs that were reachable in the
// previously captured result. The "before" snapshot is consulted, never
// recomputed — it must have been taken prior to the mutation.
// Complexity: O(V·E).
func AfterInsertion(g *core.Digraph, source int, before *bellmanford.Result) (*bellmanford.Result, []int, error) {
	if before == nil {
		return nil, nil, ErrNilResult
	}

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(source))
	if err != nil {
		return nil, nil, err
	}

	return res, before.Reachable(), nil
}
