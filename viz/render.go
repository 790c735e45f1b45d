// Package viz: record construction and the go-echarts render step.

package viz

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/layout"
)

// BuildNodes assembles the immutable node records for g: one per vertex, in
// ascending ID order, carrying its layout coordinate and the style the
// callback assigns. Vertices missing from coords default to the origin.
// Complexity: O(V).
func BuildNodes(g *core.Digraph, coords map[int]layout.Point, style StyleFn) []Node {
	if g == nil {
		return nil
	}

	nodes := make([]Node, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		p := coords[v]
		s := style(v)
		nodes = append(nodes, Node{ID: v, X: p.X, Y: p.Y, Color: s.Color, Size: s.Size})
	}

	return nodes
}

// BuildEdges assembles the immutable link records for g, sorted (From, To).
// Complexity: O(E log E).
func BuildEdges(g *core.Digraph) []Edge {
	if g == nil {
		return nil
	}

	edges := make([]Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, Edge{From: e.From, To: e.To})
	}

	return edges
}

// Render writes one self-contained interactive HTML document presenting the
// given records: every node at its precomputed coordinate, every edge drawn
// with an arrowhead, pan and zoom enabled.
// Returns ErrNilWriter / ErrNoNodes on invalid input.
// Complexity: O(V + E) plus the serialization cost.
func Render(w io.Writer, nodes []Node, edges []Edge, title string) error {
	// 1) Validate inputs.
	if w == nil {
		return ErrNilWriter
	}
	if len(nodes) == 0 {
		return ErrNoNodes
	}

	// 2) Translate the immutable records into chart series data. Node names
	//    are the stringified IDs; links reference nodes by name.
	chartNodes := make([]opts.GraphNode, 0, len(nodes))
	for _, n := range nodes {
		chartNodes = append(chartNodes, opts.GraphNode{
			Name:       strconv.Itoa(n.ID),
			X:          float32(n.X),
			Y:          float32(n.Y),
			SymbolSize: n.Size,
			ItemStyle:  &opts.ItemStyle{Color: n.Color},
		})
	}
	chartLinks := make([]opts.GraphLink, 0, len(edges))
	for _, e := range edges {
		chartLinks = append(chartLinks, opts.GraphLink{
			Source: strconv.Itoa(e.From),
			Target: strconv.Itoa(e.To),
		})
	}

	// 3) Configure the chart: fixed positions (layout "none"), roaming, and
	//    arrow symbols on the target end of each edge.
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "600px",
		}),
	)
	graph.AddSeries("paths", chartNodes, chartLinks,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:         "none",
			Roam:           true,
			EdgeSymbol:     []string{"none", "arrow"},
			EdgeSymbolSize: 7,
		}),
	)

	// 4) Serialize to the writer.
	if err := graph.Render(w); err != nil {
		return fmt.Errorf("viz: render failed: %w", err)
	}

	return nil
}

// WriteHTML renders to the file at path, creating or truncating it.
// Complexity: O(V + E) plus file I/O.
func WriteHTML(path string, nodes []Node, edges []Edge, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: create %q: %w", path, err)
	}
	defer f.Close()

	if err = Render(f, nodes, edges, title); err != nil {
		return err
	}

	return nil
}
