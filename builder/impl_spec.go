// SPDX-License-Identifier: MIT
// Package: oopsiroute/builder
//
// impl_spec.go: declarative graph description (YAML-friendly).

package builder

import "github.com/katalvlaran/oopsiroute/core"

const methodFromSpec = "FromSpec"

// Coordinate is a node position. Planar layouts use X/Y; geographic layouts
// store longitude in X and latitude in Y.
type Coordinate struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// EdgeSpec declares one undirected edge. A nil Weight means core.DefaultWeight.
type EdgeSpec struct {
	From   string   `yaml:"from" json:"from" validate:"required"`
	To     string   `yaml:"to" json:"to" validate:"required"`
	Weight *float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// GraphSpec is a declarative graph: nodes first, then edges, plus optional
// coordinates for A* heuristics.
type GraphSpec struct {
	Nodes       []string              `yaml:"nodes" json:"nodes"`
	Edges       []EdgeSpec            `yaml:"edges" json:"edges" validate:"dive"`
	Coordinates map[string]Coordinate `yaml:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// Empty reports whether the spec declares nothing.
func (s GraphSpec) Empty() bool {
	return len(s.Nodes) == 0 && len(s.Edges) == 0
}

// DemoSpec returns the demonstration network as a GraphSpec.
func DemoSpec() GraphSpec {
	spec := GraphSpec{Coordinates: DemoCoordinates()}
	for i := 0; i < 5; i++ {
		spec.Nodes = append(spec.Nodes, SymbolIDFn(i))
	}
	for _, e := range demoEdges {
		w := e.Weight
		spec.Edges = append(spec.Edges, EdgeSpec{From: e.From, To: e.To, Weight: &w})
	}

	return spec
}

// fromSpec adds spec.Nodes in order, then spec.Edges in order. Edges may not
// introduce nodes implicitly.
func fromSpec(spec GraphSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range spec.Nodes {
			if err := g.AddNode(id); err != nil {
				return constructErrorf(methodFromSpec, err, "AddNode(%q)", id)
			}
		}
		for i, e := range spec.Edges {
			w := core.DefaultWeight
			if e.Weight != nil {
				w = *e.Weight
			}
			if err := g.AddEdge(e.From, e.To, w); err != nil {
				return constructErrorf(methodFromSpec, err, "edges[%d] %s-%s", i, e.From, e.To)
			}
		}

		return nil
	}
}
