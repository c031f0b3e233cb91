package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/oopsiroute/core"
	"github.com/katalvlaran/oopsiroute/dijkstra"
)

// ExampleDijkstra finds the cheapest route on the five-node demo network.
//
//	A —1— B —2— C
//	|           |
//	2          2.5
//	|           |
//	D ———1.4——— E
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "D", 2)
	_ = g.AddEdge("D", "E", 1.4)
	_ = g.AddEdge("C", "E", 2.5)

	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithTarget("E"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("path=%v distance=%.1f\n", res.PathTo("E"), res.Dist["E"])
	// Output: path=[A D E] distance=3.4
}

// ExampleReconstructPath shows the "no path" signal: an empty slice.
func ExampleReconstructPath() {
	prev := map[string]string{"A": "", "B": "A", "Z": ""}
	fmt.Println(dijkstra.ReconstructPath(prev, "A", "B"))
	fmt.Println(len(dijkstra.ReconstructPath(prev, "A", "Z")))
	// Output:
	// [A B]
	// 0
}
