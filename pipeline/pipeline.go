// Package pipeline: the Run implementation.

package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/pathviz/bellmanford"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/layout"
	"github.com/katalvlaran/pathviz/reach"
	"github.com/katalvlaran/pathviz/viz"
)

// Run executes one full analysis: graph construction, shortest paths,
// statistics, the advisory candidate search, the fixed-policy vertex
// insertion, recomputation, and (when OutputPath is set) the HTML render.
// Progress and findings are written as plain text to report.
//
// A reachable negative cycle aborts the whole run with
// bellmanford.ErrNegativeCycle and no partial Summary. A failed candidate
// search (reach.ErrNoCandidate) is reported and recovered from.
// Complexity: O(V·E) per shortest-path computation, of which there are up
// to three (before, candidate search, after).
func Run(cfg Config, report io.Writer) (*Summary, error) {
	// 1) Build the graph from the literal edge list.
	if len(cfg.Edges) == 0 {
		return nil, ErrNoEdges
	}
	g, err := core.FromEdgeList(cfg.Edges)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(cfg.Source) || !g.HasVertex(cfg.Sink) {
		return nil, core.ErrVertexNotFound
	}

	// 2) Shortest paths before any mutation. A negative cycle ends the run.
	before, err := bellmanford.BellmanFord(g, bellmanford.Source(cfg.Source))
	if err != nil {
		fmt.Fprintf(report, "analysis aborted: %v\n", err)
		return nil, err
	}

	// 3) Pivot: the vertex with the longest hop path.
	pivot, err := reach.MostReachable(before)
	if err != nil {
		fmt.Fprintf(report, "analysis aborted: %v\n", err)
		return nil, err
	}
	fmt.Fprintf(report, "most reachable vertex: %d (path %v, %d vertices)\n",
		pivot, before.Path[pivot], before.PathLen(pivot))

	// 4) Cost-descending listing.
	costs := reach.SortByCostDesc(before)
	fmt.Fprintln(report, "vertices by path cost, highest first:")
	for _, cn := range costs {
		fmt.Fprintf(report, "  vertex %d: cost %g\n", cn.ID, cn.Cost)
	}

	// 5) Advisory candidate search. ErrNoCandidate is a finding, not a
	//    failure: report it and keep going.
	var candidate *reach.Candidate
	cand, err := reach.InsertionCandidate(g, cfg.Source, pivot)
	switch {
	case errors.Is(err, reach.ErrNoCandidate):
		fmt.Fprintln(report, "insertion candidate: none (no vertex with out-neighbors disjoint from pivot)")
	case err != nil:
		return nil, err
	default:
		candidate = &cand
		fmt.Fprintf(report, "insertion candidate: vertex %d (path length %d)\n", cand.ID, cand.PathLen)
	}

	// 6) Fixed-policy insertion: source→new and new→sink.
	newID, err := reach.IntroduceVertex(g, cfg.Source, cfg.Sink, cfg.WeightIn, cfg.WeightOut)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(report, "introduced vertex %d: edges %d→%d (weight %g) and %d→%d (weight %g)\n",
		newID, cfg.Source, newID, cfg.WeightIn, newID, cfg.Sink, cfg.WeightOut)

	// 7) Recompute on the mutated graph; keep the pre-insertion snapshot for
	//    the previously-reachable set.
	after, prevReachable, err := reach.AfterInsertion(g, cfg.Source, before)
	if err != nil {
		fmt.Fprintf(report, "analysis aborted: %v\n", err)
		return nil, err
	}
	fmt.Fprintf(report, "vertex %d reachable via %v (cost %g)\n", newID, after.Path[newID], after.Dist[newID])

	// 8) Count post-insertion shortest paths that traverse the new vertex.
	through := 0
	for _, v := range after.Reachable() {
		for _, u := range after.Path[v] {
			if u == newID {
				through++
				break
			}
		}
	}
	fmt.Fprintf(report, "shortest paths traversing vertex %d: %d\n", newID, through)

	// 9) Render, unless the caller opted out.
	if cfg.OutputPath != "" {
		if err = render(g, cfg, newID, prevReachable); err != nil {
			return nil, err
		}
		fmt.Fprintf(report, "wrote visualization to %s\n", cfg.OutputPath)
	}

	return &Summary{
		MostReachable:       pivot,
		CostsDesc:           costs,
		Candidate:           candidate,
		NewVertex:           newID,
		NewVertexPath:       after.Path[newID],
		NewVertexCost:       after.Dist[newID],
		PathsThroughNew:     through,
		PreviouslyReachable: prevReachable,
	}, nil
}

// render computes coordinates, builds the immutable records, and writes
// the HTML file. Vertex classes: the inserted vertex, vertices reachable
// before the insertion, everything else.
func render(g *core.Digraph, cfg Config, newID int, prevReachable []int) error {
	// 1) Coordinates.
	var coords map[int]layout.Point
	var err error
	switch cfg.Layout {
	case LayoutSpring:
		coords, err = layout.Spring(g, layout.WithSeed(cfg.Seed))
	case LayoutCircular, "":
		coords, err = layout.Circular(g)
	default:
		return fmt.Errorf("%w: %q", ErrBadLayout, cfg.Layout)
	}
	if err != nil {
		return err
	}

	// 2) Classification for the style callback.
	wasReachable := make(map[int]bool, len(prevReachable))
	for _, v := range prevReachable {
		wasReachable[v] = true
	}
	style := func(id int) viz.Style {
		switch {
		case id == newID:
			return viz.Style{Color: viz.ColorNew, Size: viz.SizeHighlight}
		case wasReachable[id]:
			return viz.Style{Color: viz.ColorReachable, Size: viz.SizeDefault}
		default:
			return viz.Style{Color: viz.ColorDefault, Size: viz.SizeDefault}
		}
	}

	// 3) Immutable records, one render call.
	nodes := viz.BuildNodes(g, coords, style)
	edges := viz.BuildEdges(g)
	title := cfg.Title
	if title == "" {
		title = "pathviz: shortest paths with negative weights"
	}

	return viz.WriteHTML(cfg.OutputPath, nodes, edges, title)
}
