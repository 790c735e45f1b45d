package pipeline_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/bellmanford"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/pipeline"
)

// referenceConfig is the end-to-end scenario from the reference data:
// vertices 0–8, 15 edges (one negative), source 0, sink 8, insertion
// weights 1 and 2.
func referenceConfig() pipeline.Config {
	return pipeline.Config{
		Edges: []core.Edge{
			{From: 0, To: 1, Weight: 4},
			{From: 0, To: 2, Weight: 3},
			{From: 1, To: 3, Weight: 2},
			{From: 2, To: 3, Weight: 5},
			{From: 3, To: 4, Weight: -6},
			{From: 4, To: 5, Weight: 2},
			{From: 5, To: 6, Weight: 1},
			{From: 6, To: 7, Weight: 3},
			{From: 7, To: 8, Weight: 2},
			{From: 2, To: 5, Weight: 8},
			{From: 1, To: 6, Weight: 7},
			{From: 4, To: 7, Weight: 4},
			{From: 5, To: 8, Weight: 6},
			{From: 0, To: 3, Weight: 9},
			{From: 6, To: 8, Weight: 5},
		},
		Source:    0,
		Sink:      8,
		WeightIn:  1,
		WeightOut: 2,
	}
}

func TestRun_ReferenceScenario(t *testing.T) {
	var report bytes.Buffer
	sum, err := pipeline.Run(referenceConfig(), &report)
	require.NoError(t, err)

	// Pivot: vertices 6 and 8 tie at 6 hops; smallest ID wins.
	require.Equal(t, 6, sum.MostReachable)

	// Highest pre-insertion cost is 6, shared by 3 and 8 in stable ID order.
	require.NotEmpty(t, sum.CostsDesc)
	require.Equal(t, 3, sum.CostsDesc[0].ID)
	require.Equal(t, 6.0, sum.CostsDesc[0].Cost)

	// The advisory search lands on the sink: it is the deepest vertex whose
	// out-neighbors avoid the pivot's.
	require.NotNil(t, sum.Candidate)
	require.Equal(t, 8, sum.Candidate.ID)

	// Fixed-policy insertion: ID 9 (= prior vertex count), reached directly
	// from the source; the sink's shortest path reroutes through it, so two
	// shortest paths traverse the new vertex.
	require.Equal(t, 9, sum.NewVertex)
	require.Equal(t, []int{0, 9}, sum.NewVertexPath)
	require.Equal(t, 1.0, sum.NewVertexCost)
	require.Equal(t, 2, sum.PathsThroughNew)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, sum.PreviouslyReachable)

	// The textual surface mentions every headline finding.
	out := report.String()
	require.Contains(t, out, "most reachable vertex: 6")
	require.Contains(t, out, "insertion candidate: vertex 8")
	require.Contains(t, out, "introduced vertex 9")
	require.Contains(t, out, "shortest paths traversing vertex 9: 2")
}

func TestRun_WritesVisualization(t *testing.T) {
	cfg := referenceConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "graph.html")
	cfg.Layout = pipeline.LayoutSpring
	cfg.Seed = 3

	var report bytes.Buffer
	_, err := pipeline.Run(cfg, &report)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Contains(t, report.String(), "wrote visualization to "+cfg.OutputPath)
}

func TestRun_NegativeCycleAbortsWholeFlow(t *testing.T) {
	cfg := pipeline.Config{
		Edges: []core.Edge{
			{From: 0, To: 1, Weight: 1},
			{From: 1, To: 2, Weight: -1},
			{From: 2, To: 1, Weight: -1},
		},
		Source: 0,
		Sink:   2,
	}

	var report bytes.Buffer
	sum, err := pipeline.Run(cfg, &report)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	require.Nil(t, sum, "no partial summary on negative cycle")
	require.Contains(t, report.String(), "analysis aborted")
}

func TestRun_NoCandidateIsRecovered(t *testing.T) {
	// Pivot is vertex 1 (out-set {1} via its self-loop); every vertex's
	// out-set intersects it, so the candidate search fails — but the flow
	// must keep going and still insert the new vertex.
	cfg := pipeline.Config{
		Edges: []core.Edge{
			{From: 0, To: 1, Weight: 1},
			{From: 1, To: 1, Weight: 1},
		},
		Source:    0,
		Sink:      1,
		WeightIn:  1,
		WeightOut: 2,
	}

	var report bytes.Buffer
	sum, err := pipeline.Run(cfg, &report)
	require.NoError(t, err)
	require.Nil(t, sum.Candidate)
	require.Contains(t, report.String(), "insertion candidate: none")
	require.Equal(t, 2, sum.NewVertex, "insertion proceeds despite the failed search")
}

func TestRun_InvalidConfig(t *testing.T) {
	var report bytes.Buffer

	_, err := pipeline.Run(pipeline.Config{}, &report)
	require.ErrorIs(t, err, pipeline.ErrNoEdges)

	cfg := referenceConfig()
	cfg.Sink = 42
	_, err = pipeline.Run(cfg, &report)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
