// Package viz: record types, palette constants, and sentinel errors.
package viz

import "errors"

// Sentinel errors for rendering operations.
var (
	// ErrNilWriter indicates Render was given a nil io.Writer.
	ErrNilWriter = errors.New("viz: writer is nil")

	// ErrNoNodes indicates an empty node list; there is nothing to draw.
	ErrNoNodes = errors.New("viz: no nodes to render")
)

// Conventional palette for the three vertex classes the pipeline reports.
const (
	// ColorNew marks the vertex inserted during this run.
	ColorNew = "#e15759"

	// ColorReachable marks vertices that were reachable before the insertion.
	ColorReachable = "#59a14f"

	// ColorDefault marks every other vertex.
	ColorDefault = "#4e79a7"

	// SizeDefault is the marker size for ordinary vertices.
	SizeDefault = 12.0

	// SizeHighlight is the marker size for the inserted vertex.
	SizeHighlight = 18.0
)

// Style is the visual treatment of one vertex.
type Style struct {
	// Color is a CSS color for the vertex marker.
	Color string

	// Size is the marker diameter in pixels.
	Size float64
}

// StyleFn classifies a vertex ID into a Style. It must be pure: BuildNodes
// calls it exactly once per vertex in ascending ID order.
type StyleFn func(id int) Style

// Node is one fully-built, immutable vertex record: coordinate plus visual
// treatment. Records are never mutated after construction.
type Node struct {
	ID    int
	X, Y  float64
	Color string
	Size  float64
}

// Edge is one directed link between two vertex IDs.
type Edge struct {
	From, To int
}
