package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/layout"
)

func ring(t *testing.T, n int) *core.Digraph {
	t.Helper()
	edges := make([]core.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{From: i, To: (i + 1) % n, Weight: 1})
	}
	g, err := core.FromEdgeList(edges)
	require.NoError(t, err)

	return g
}

func TestCircular_UnitCircle(t *testing.T) {
	g := ring(t, 8)
	coords, err := layout.Circular(g)
	require.NoError(t, err)
	require.Len(t, coords, 8)

	// Every point sits on the unit circle; vertex 0 sits at (1, 0).
	for v, p := range coords {
		require.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12, "vertex %d off the unit circle", v)
	}
	require.InDelta(t, 1.0, coords[0].X, 1e-12)
	require.InDelta(t, 0.0, coords[0].Y, 1e-12)
}

func TestCircular_InvalidInput(t *testing.T) {
	_, err := layout.Circular(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = layout.Circular(core.NewDigraph())
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestSpring_DeterministicForFixedSeed(t *testing.T) {
	g := ring(t, 6)

	a, err := layout.Spring(g, layout.WithSeed(7))
	require.NoError(t, err)
	b, err := layout.Spring(g, layout.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b, "same graph and seed must reproduce coordinates exactly")

	c, err := layout.Spring(g, layout.WithSeed(8))
	require.NoError(t, err)
	require.NotEqual(t, a, c, "a different seed should move the layout")
}

func TestSpring_CoversEveryVertex(t *testing.T) {
	g := ring(t, 5)
	g.AddVertex() // isolated vertex still gets a coordinate

	coords, err := layout.Spring(g, layout.WithIterations(10))
	require.NoError(t, err)
	require.Len(t, coords, g.VertexCount())
	for _, v := range g.Vertices() {
		p := coords[v]
		require.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "vertex %d has NaN coordinates", v)
	}
}

func TestSpring_InvalidInput(t *testing.T) {
	_, err := layout.Spring(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = layout.Spring(core.NewDigraph())
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}
