// Package reach derives reachability statistics from Bellman–Ford results
// and implements the vertex-insertion heuristic built on top of them.
//
// Overview:
//
//   - MostReachable selects the vertex whose shortest path from the source
//     has the most hops — the "deep end" of the reachable graph.
//   - SortByCostDesc orders reachable vertices by path cost, highest first,
//     as a fresh slice that can be regenerated at will.
//   - InsertionCandidate searches for the existing vertex best placed to
//     anchor a new vertex: its out-neighbor set must be disjoint from the
//     pivot's, and among those it has the longest hop path from the source.
//   - IntroduceVertex mutates the graph: the new vertex takes the next
//     dense ID (the current vertex count) and is wired source→new and
//     new→sink with caller-chosen weights.
//   - AfterInsertion recomputes shortest paths on the mutated graph and
//     reports which vertices were already reachable beforehand.
//
// The candidate search is advisory: it reports where a new vertex *could*
// attach, while IntroduceVertex wires the new vertex by fixed policy. The
// two are deliberately sequenced by the caller, never fused.
//
// Tie-breaking: wherever "longest path" admits a tie, the smallest vertex
// ID wins. This is a documented, deterministic rule — results never depend
// on map iteration order.
//
// Error handling (sentinel errors):
//
//   - ErrNilResult:   a nil *bellmanford.Result was supplied.
//   - ErrEmptyResult: nothing is reachable besides the source itself.
//   - ErrNoCandidate: no vertex satisfies the disjoint-neighbor condition.
//     Callers are expected to report this and continue; it is a finding,
//     not a crash.
package reach
