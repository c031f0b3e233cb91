package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/oopsiroute/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph and register nodes first.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id)
	}

	// 2) Connect them; Link uses the default weight 1.0.
	_ = g.AddEdge("A", "B", 2.5)
	_ = g.Link("B", "C")

	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Neighbors of B:", g.NeighborIDs("B"))
	w, _ := g.Weight("C", "B")
	fmt.Println("w(C,B):", w)

	// 3) Remove a node; its edges disappear from both sides.
	g.RemoveNode("B")
	fmt.Println("After removing B:", g.Nodes(), g.EdgeCount())

	// Output:
	// Nodes: [A B C]
	// Neighbors of B: [A C]
	// w(C,B): 1
	// After removing B: [A C] 0
}

// ExampleGraph_AddEdge shows that unknown endpoints are rejected.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddNode("A")

	err := g.AddEdge("A", "Q", 1)
	fmt.Println(errors.Is(err, core.ErrNodeNotFound), g.HasNode("Q"))
	// Output: true false
}
