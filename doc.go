// Package pathviz analyzes directed, weighted, in-memory graphs whose edge
// weights may be negative, and renders the findings as an interactive
// visualization.
//
// 🚀 What is pathviz?
//
//	A small, focused toolkit that chains together:
//		• Core primitives: a dense-ID directed graph, safe to read under mutation
//		• Shortest paths: Bellman–Ford with typed negative-cycle rejection
//		• Reachability: longest-hop selection, cost-ranked listings
//		• Augmentation: a disjoint-neighbor insertion heuristic + fixed wiring
//		• Layout: circular and force-directed coordinates
//		• Rendering: one self-contained interactive HTML file
//
// ✨ Why pathviz?
//
//   - Negative weights welcome – the algorithm is chosen for them, not
//     retrofitted around them
//   - Deterministic – sorted iteration everywhere, documented tie-breaks,
//     seeded layouts
//   - Typed failures – a reachable negative cycle or an empty candidate set
//     is a named error, never a stack trace
//
// The subpackages, in pipeline order:
//
//	core/        — Digraph, Edge, dense vertex IDs, edge-list construction
//	bellmanford/ — single-source shortest paths tolerant of negative weights
//	reach/       — derived statistics and the vertex-insertion heuristic
//	layout/      — 2-D coordinates (circular, spring)
//	viz/         — immutable render records → interactive HTML (go-echarts)
//	pipeline/    — the whole flow, end to end, with a textual report
//	cmd/pathviz  — CLI: YAML scenarios in, graph.html out
//
// Quick ASCII example:
//
//	[0] --4--> [1] --(-6)--> [2]
//
//	a negative edge that a shortest path may legitimately use.
//
// See examples/ for runnable demos and cmd/pathviz for the command line.
//
//	go get github.com/katalvlaran/pathviz
package pathviz
