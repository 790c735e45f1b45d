// Package pipeline wires the whole pathviz flow end to end: build the graph
// from an edge list, compute shortest paths from the source, report the
// reachability statistics, run the advisory insertion-candidate search,
// introduce the new vertex by fixed policy, recompute, and render the
// interactive visualization.
//
// The flow is single-threaded and runs once, top to bottom. Every step is a
// pure computation except the one explicit graph mutation (the vertex
// insertion) and the final file write.
//
// Failure policy (two recoverable error kinds, handled differently):
//
//   - bellmanford.ErrNegativeCycle aborts the entire run: no statistics, no
//     mutation, no render. The failure is reported and returned.
//   - reach.ErrNoCandidate is caught locally: the outcome is reported, the
//     Candidate field of the Summary stays nil, and the rest of the flow —
//     insertion included — proceeds, because edge placement never depended
//     on the candidate search to begin with.
//
// Everything the run learns is written as plain text to the report writer
// and returned in the Summary for programmatic use.
package pipeline
