// Package bellmanford_test provides runnable examples for the Bellman–Ford
// implementation, demonstrating both the success path and the typed
// negative-cycle failure.
package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/bellmanford"
	"github.com/katalvlaran/pathviz/core"
)

// ExampleBellmanFord demonstrates shortest paths through a negative edge.
// Complexity: O(V·E).
func ExampleBellmanFord() {
	// 1) Build a chain where the middle edge is a large discount:
	//    0 →(4) 1 →(-6) 2 →(2) 3
	g, _ := core.FromEdgeList([]core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: -6},
		{From: 2, To: 3, Weight: 2},
	})

	// 2) Compute shortest paths from vertex 0.
	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The cost to 2 is negative, and the path to 3 runs the full chain.
	fmt.Printf("dist[2]=%g dist[3]=%g path[3]=%v\n", res.Dist[2], res.Dist[3], res.Path[3])
	// Output: dist[2]=-2 dist[3]=0 path[3]=[0 1 2 3]
}

// ExampleBellmanFord_negativeCycle shows the typed failure produced when a
// negative-weight cycle is reachable from the source.
func ExampleBellmanFord_negativeCycle() {
	// 1) The cycle 1→2→1 sums to -2 and is reachable from 0.
	g, _ := core.FromEdgeList([]core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -1},
		{From: 2, To: 1, Weight: -1},
	})

	// 2) The computation fails as a whole; no partial result exists.
	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	fmt.Println("negative cycle:", errors.Is(err, bellmanford.ErrNegativeCycle))
	fmt.Println("result is nil:", res == nil)
	// Output:
	// negative cycle: true
	// result is nil: true
}
