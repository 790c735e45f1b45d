package viz_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/layout"
	"github.com/katalvlaran/pathviz/viz"
)

func triangle(t *testing.T) *core.Digraph {
	t.Helper()
	g, err := core.FromEdgeList([]core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 0, Weight: 1},
	})
	require.NoError(t, err)

	return g
}

func TestBuildNodes_AscendingWithStyles(t *testing.T) {
	g := triangle(t)
	coords, err := layout.Circular(g)
	require.NoError(t, err)

	nodes := viz.BuildNodes(g, coords, func(id int) viz.Style {
		if id == 2 {
			return viz.Style{Color: viz.ColorNew, Size: viz.SizeHighlight}
		}

		return viz.Style{Color: viz.ColorDefault, Size: viz.SizeDefault}
	})

	require.Len(t, nodes, 3)
	for i, n := range nodes {
		require.Equal(t, i, n.ID, "nodes must come out in ascending ID order")
		p := coords[n.ID]
		require.Equal(t, p.X, n.X)
		require.Equal(t, p.Y, n.Y)
	}
	require.Equal(t, viz.ColorNew, nodes[2].Color)
	require.Equal(t, viz.SizeHighlight, nodes[2].Size)
	require.Equal(t, viz.ColorDefault, nodes[0].Color)
}

func TestBuildEdges_MatchesGraph(t *testing.T) {
	g := triangle(t)
	edges := viz.BuildEdges(g)
	require.Equal(t, []viz.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, edges)
}

func TestRender_ProducesSelfContainedHTML(t *testing.T) {
	g := triangle(t)
	coords, err := layout.Circular(g)
	require.NoError(t, err)
	nodes := viz.BuildNodes(g, coords, func(int) viz.Style {
		return viz.Style{Color: viz.ColorDefault, Size: viz.SizeDefault}
	})
	edges := viz.BuildEdges(g)

	var buf bytes.Buffer
	require.NoError(t, viz.Render(&buf, nodes, edges, "triangle demo"))

	html := buf.String()
	require.True(t, strings.Contains(html, "<html"), "output should be an HTML document")
	require.Contains(t, html, "triangle demo", "title must appear in the document")
	require.Contains(t, html, "echarts", "chart runtime must be referenced")
}

func TestRender_InvalidInput(t *testing.T) {
	err := viz.Render(nil, []viz.Node{{}}, nil, "t")
	require.ErrorIs(t, err, viz.ErrNilWriter)

	var buf bytes.Buffer
	err = viz.Render(&buf, nil, nil, "t")
	require.ErrorIs(t, err, viz.ErrNoNodes)
}

func TestWriteHTML_CreatesFile(t *testing.T) {
	g := triangle(t)
	coords, err := layout.Circular(g)
	require.NoError(t, err)
	nodes := viz.BuildNodes(g, coords, func(int) viz.Style {
		return viz.Style{Color: viz.ColorDefault, Size: viz.SizeDefault}
	})

	path := filepath.Join(t.TempDir(), "graph.html")
	require.NoError(t, viz.WriteHTML(path, nodes, viz.BuildEdges(g), "file demo"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
