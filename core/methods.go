// Package core: Digraph method implementations.
//
// All operations are O(1) or O(output) under a single RWMutex. Adjacency is
// stored as a slice of maps indexed by vertex ID: out[from][to] = weight.
// Accessors that return collections always return sorted copies so callers
// iterate deterministically and cannot alias internal state.

package core

import "sort"

// AddVertex inserts a new vertex and returns its ID.
//
// The new ID is always the vertex count at the time of the call, so IDs stay
// dense and contiguous from 0. Calling AddVertex twice in a row yields two
// consecutive IDs.
// Complexity: O(1) amortized.
func (g *Digraph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.out)
	g.out = append(g.out, make(map[int]float64))

	return id
}

// HasVertex reports whether id names an existing vertex.
// Complexity: O(1).
func (g *Digraph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && id < len(g.out)
}

// AddEdge creates (or overwrites) the directed edge from→to with the given
// weight. Both endpoints must already exist; weights may be negative and
// self-loops are allowed. Re-adding an existing pair replaces the weight.
// Returns ErrVertexNotFound if either endpoint is missing.
// Complexity: O(1).
func (g *Digraph) AddEdge(from, to int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Validate endpoints against the dense ID range.
	if from < 0 || from >= len(g.out) || to < 0 || to >= len(g.out) {
		return ErrVertexNotFound
	}

	if _, exists := g.out[from][to]; !exists {
		g.edgeCount++
	}
	g.out[from][to] = weight

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Digraph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.out) {
		return false
	}
	_, ok := g.out[from][to]

	return ok
}

// Weight returns the weight of the directed edge from→to and whether the
// edge exists.
// Complexity: O(1).
func (g *Digraph) Weight(from, to int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.out) {
		return 0, false
	}
	w, ok := g.out[from][to]

	return w, ok
}

// OutNeighbors returns the IDs reachable from id by a single outgoing edge,
// sorted ascending for reproducible iteration.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Digraph) OutNeighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.out) {
		return nil, ErrVertexNotFound
	}
	ids := make([]int, 0, len(g.out[id]))
	for to := range g.out[id] {
		ids = append(ids, to)
	}
	sort.Ints(ids)

	return ids, nil
}

// OutDegree returns the number of outgoing edges of id.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(1).
func (g *Digraph) OutDegree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.out) {
		return 0, ErrVertexNotFound
	}

	return len(g.out[id]), nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V).
func (g *Digraph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, len(g.out))
	for i := range g.out {
		ids[i] = i
	}

	return ids
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Digraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, tos := range g.out {
		for to, w := range tos {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Digraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// EdgeCount returns the total number of edges. O(1).
func (g *Digraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the Digraph: same vertices, edges, weights.
// Complexity: O(V + E).
func (g *Digraph) Clone() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Digraph{
		out:       make([]map[int]float64, len(g.out)),
		edgeCount: g.edgeCount,
	}
	for from, tos := range g.out {
		clone.out[from] = make(map[int]float64, len(tos))
		for to, w := range tos {
			clone.out[from][to] = w
		}
	}

	return clone
}
