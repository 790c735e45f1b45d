// Package bellmanford provides a precise implementation of the Bellman–Ford
// single-source shortest-path algorithm on directed weighted graphs whose
// edge weights may be negative.
//
// Overview:
//
//   - BellmanFord computes the minimum-cost path from a single source vertex
//     to every reachable vertex in O(V·E) time, where V = |vertices| and
//     E = |edges|.
//   - Unlike Dijkstra, it makes no non-negativity assumption: it relaxes the
//     full edge list V−1 times, then runs one extra detection round. If that
//     round still improves any distance, a negative-weight cycle is reachable
//     from the source and "shortest" is undefined — the call fails with
//     ErrNegativeCycle and produces no partial result.
//
// When to use:
//
//   - Whenever edge weights can be negative (discounts, rebates, potentials)
//     and you still need exact shortest paths.
//   - When you need the failure itself: detecting a reachable negative cycle
//     is often the interesting answer.
//
// Key features:
//
//   - Functional options keep the API signature stable: Source selects the
//     start vertex, WithEpsilon tunes the strict-improvement threshold used
//     for float64 relaxation.
//   - Deterministic: edges are relaxed in sorted (From, To) order and all
//     Result accessors return sorted copies, so repeated runs on the same
//     graph produce identical output.
//   - Early exit: a round that improves nothing terminates the loop before
//     the V−1 bound.
//
// Performance and complexity:
//
//   - Time:  O(V·E) worst case; O(k·E) when distances stabilize after k rounds.
//   - Space: O(V) for the distance and predecessor tables, O(E) for the
//     snapshot of the edge list.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:      Source was not provided (or is negative).
//   - ErrNilGraph:      the graph pointer is nil.
//   - ErrEmptyGraph:    the graph has no vertices.
//   - ErrVertexNotFound: the source vertex does not exist.
//   - ErrNegativeCycle: a negative-weight cycle is reachable from the source.
//
// Example:
//
//	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
//	if errors.Is(err, bellmanford.ErrNegativeCycle) {
//	    // costs can decrease without bound; no result exists
//	}
package bellmanford
