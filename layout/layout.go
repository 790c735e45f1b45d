// Package layout: Circular and Spring implementations.

package layout

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/pathviz/core"
)

// Circular places all vertices evenly spaced on the unit circle, in
// ascending ID order starting at angle 0.
// Returns core.ErrNilGraph / core.ErrEmptyGraph on invalid input.
// Complexity: O(V).
func Circular(g *core.Digraph) (map[int]Point, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, core.ErrEmptyGraph
	}

	coords := make(map[int]Point, n)
	step := 2 * math.Pi / float64(n)
	for _, v := range g.Vertices() {
		angle := step * float64(v)
		coords[v] = Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}

	return coords, nil
}

// Spring computes a Fruchterman–Reingold style force-directed layout.
// Connected vertices attract proportionally to d²/k, all pairs repel
// proportionally to k²/d, and per-step displacement is capped by a linearly
// cooling temperature. Deterministic for a fixed seed.
// Returns core.ErrNilGraph / core.ErrEmptyGraph on invalid input.
// Complexity: O(I·(V² + E)) for I iterations.
func Spring(g *core.Digraph, opts ...Option) (map[int]Point, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, core.ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, core.ErrEmptyGraph
	}

	// 3) Seeded initial placement in the unit square.
	rng := rand.New(rand.NewSource(cfg.Seed))
	pos := make([]Point, n)
	for i := range pos {
		pos[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}

	// 4) Ideal pairwise distance for a unit-area frame.
	k := math.Sqrt(1 / float64(n))
	edges := g.Edges()
	disp := make([]Point, n)

	// 5) Simulate. Temperature starts at 0.1 and cools to zero linearly.
	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range disp {
			disp[i] = Point{}
		}

		// 5a) Repulsion between every vertex pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				d := math.Hypot(dx, dy)
				if d < 1e-9 {
					// Coincident points get a tiny deterministic nudge.
					dx, dy, d = 1e-4, 1e-4, math.Sqrt2*1e-4
				}
				f := k * k / d
				disp[i].X += dx / d * f
				disp[i].Y += dy / d * f
				disp[j].X -= dx / d * f
				disp[j].Y -= dy / d * f
			}
		}

		// 5b) Attraction along edges (direction is irrelevant for layout).
		for _, e := range edges {
			if e.From == e.To {
				continue // self-loops exert no force
			}
			dx, dy := pos[e.From].X-pos[e.To].X, pos[e.From].Y-pos[e.To].Y
			d := math.Hypot(dx, dy)
			if d < 1e-9 {
				continue
			}
			f := d * d / k
			disp[e.From].X -= dx / d * f
			disp[e.From].Y -= dy / d * f
			disp[e.To].X += dx / d * f
			disp[e.To].Y += dy / d * f
		}

		// 5c) Apply displacements, capped by the current temperature.
		t := 0.1 * (1 - float64(iter)/float64(cfg.Iterations))
		for i := 0; i < n; i++ {
			d := math.Hypot(disp[i].X, disp[i].Y)
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, t)
			pos[i].X += disp[i].X / d * step
			pos[i].Y += disp[i].Y / d * step
		}
	}

	// 6) Return as a map keyed by vertex ID.
	coords := make(map[int]Point, n)
	for _, v := range g.Vertices() {
		coords[v] = pos[v]
	}

	return coords, nil
}
