// Package layout computes 2-D coordinates for the vertices of a Digraph,
// for consumption by the render collaborator in package viz.
//
// Overview:
//
//   - Circular places vertices evenly on the unit circle. Exact, O(V),
//     fully deterministic.
//   - Spring runs a Fruchterman–Reingold style force simulation: connected
//     vertices attract, all pairs repel, displacement is capped by a
//     temperature that cools linearly. Deterministic for a fixed seed.
//
// Both return a map from vertex ID to Point; the map is a fresh value and
// carries no reference to the graph. Coordinates are consulted once per
// render — nothing here is incremental.
//
// Complexity:
//
//   - Circular: O(V)
//   - Spring:   O(I·(V² + E)) for I iterations — fine at visualization scale.
//
// Error handling (sentinel errors, shared with package core):
//
//   - core.ErrNilGraph:   the graph pointer is nil.
//   - core.ErrEmptyGraph: the graph has no vertices to place.
package layout
