// SPDX-License-Identifier: MIT
// Package: oopsiroute/builder
//
// impl_demo.go: the five-node demonstration network and its layout.

package builder

import (
	"fmt"

	"github.com/katalvlaran/oopsiroute/core"
)

const methodDemo = "Demo"

// demoEdges lists the demonstration edges in insertion order.
var demoEdges = []core.Edge{
	{From: "A", To: "B", Weight: 1},
	{From: "B", To: "C", Weight: 2},
	{From: "A", To: "D", Weight: 2},
	{From: "D", To: "E", Weight: 1.4},
	{From: "C", To: "E", Weight: 2.5},
}

// demo adds nodes A..E and the demoEdges. Existing nodes are reused.
func demo(g *core.Graph, _ builderConfig) error {
	for i := 0; i < 5; i++ {
		if err := g.AddNode(SymbolIDFn(i)); err != nil {
			return constructErrorf(methodDemo, err, "AddNode(%s)", SymbolIDFn(i))
		}
	}
	for _, e := range demoEdges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return constructErrorf(methodDemo, err, "AddEdge(%s,%s)", e.From, e.To)
		}
	}

	return nil
}

// NewDemo builds the demonstration network on a fresh graph.
func NewDemo(gopts ...core.GraphOption) *core.Graph {
	g, err := BuildGraph(gopts, nil, Demo())
	if err != nil {
		// demo cannot fail on a fresh graph; reaching here is a programming error.
		panic(fmt.Sprintf("builder: NewDemo: %v", err))
	}

	return g
}

// DemoCoordinates returns a planar layout of the demonstration network in
// which no edge is shorter than the straight line between its endpoints, so
// Euclidean distance over it is an admissible A* heuristic.
func DemoCoordinates() map[string]Coordinate {
	return map[string]Coordinate{
		"A": {X: 0, Y: 0},
		"B": {X: 1, Y: 0},
		"C": {X: 2.5, Y: 0},
		"D": {X: 0, Y: -1.5},
		"E": {X: 1.2, Y: -1.5},
	}
}
