// Package viz renders a laid-out Digraph as a single self-contained,
// interactive HTML visualization.
//
// Overview:
//
//   - Inputs are immutable, fully-built records: a []Node slice carrying
//     coordinate, color, and marker size per vertex, and a []Edge slice of
//     directed links. They are constructed functionally (BuildNodes,
//     BuildEdges) and handed to the renderer once — there are no shared
//     mutable trace buffers to accumulate into.
//   - Styling is a pure callback: the caller classifies each vertex
//     (freshly inserted, previously reachable, everything else) and the
//     palette constants give the conventional colors for those classes.
//   - Render writes one HTML document via the go-echarts graph chart with
//     explicit per-node positions (layout "none"), pan/zoom enabled, and
//     arrowheads marking edge direction.
//
// The renderer reports only success or failure; nothing downstream consumes
// its output beyond the written file.
//
// Error handling (sentinel errors):
//
//   - ErrNilWriter: Render was given a nil io.Writer.
//   - ErrNoNodes:   the node list is empty; there is nothing to draw.
package viz
