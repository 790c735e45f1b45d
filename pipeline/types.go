// Package pipeline: configuration and summary types for a pathviz run.
package pipeline

import (
	"errors"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/reach"
)

// Sentinel errors for pipeline configuration.
var (
	// ErrNoEdges indicates the configuration supplied an empty edge list.
	ErrNoEdges = errors.New("pipeline: edge list is empty")

	// ErrBadLayout indicates an unknown layout kind.
	ErrBadLayout = errors.New("pipeline: unknown layout kind")
)

// LayoutKind selects how vertex coordinates are computed before rendering.
type LayoutKind string

const (
	// LayoutCircular places vertices evenly on a circle.
	LayoutCircular LayoutKind = "circular"

	// LayoutSpring runs the force-directed layout.
	LayoutSpring LayoutKind = "spring"
)

// Config describes one pathviz run.
//
// OutputPath may be empty, which skips the render step entirely — useful for
// analysis-only runs and for tests that do not want files on disk.
type Config struct {
	// Edges is the literal (from, to, weight) list the graph is built from.
	Edges []core.Edge

	// Source is the vertex all paths are measured from.
	Source int

	// Sink is the fixed target the new vertex is wired into.
	Sink int

	// WeightIn is the weight of the source→new edge.
	WeightIn float64

	// WeightOut is the weight of the new→sink edge.
	WeightOut float64

	// OutputPath is where the HTML visualization is written; empty skips it.
	OutputPath string

	// Layout selects the coordinate algorithm (default LayoutCircular).
	Layout LayoutKind

	// Seed feeds the spring layout's initial placement.
	Seed int64

	// Title is the visualization title.
	Title string
}

// Summary collects everything a run reports, for programmatic consumers.
type Summary struct {
	// MostReachable is the pivot vertex: longest hop path from the source.
	MostReachable int

	// CostsDesc lists reachable vertices by pre-insertion cost, highest first.
	CostsDesc []reach.CostedNode

	// Candidate is the advisory insertion-candidate outcome; nil when the
	// search found no vertex with out-neighbors disjoint from the pivot's.
	Candidate *reach.Candidate

	// NewVertex is the ID assigned to the inserted vertex.
	NewVertex int

	// NewVertexPath is the shortest path reaching the inserted vertex.
	NewVertexPath []int

	// NewVertexCost is the cost of that path.
	NewVertexCost float64

	// PathsThroughNew counts post-insertion shortest paths that traverse the
	// inserted vertex.
	PathsThroughNew int

	// PreviouslyReachable lists the vertices that were reachable before the
	// insertion, from the snapshot captured at that time.
	PreviouslyReachable []int
}
