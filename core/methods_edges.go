// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Link/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() enumerates nodes in insertion order and their neighbors in insertion order.
// Invariant:
//   - Every mutation here writes both directions, so w(u,v) == w(v,u) always holds.

package core

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// AddEdge sets the weight of the undirected edge u—v, overwriting any prior weight.
//
// Steps:
//  1. Both endpoints must already exist, else ErrNodeNotFound (graph untouched).
//  2. On a strict graph, reject negative/NaN/Inf weights with ErrBadWeight.
//  3. Write weight under u and under v; a fresh pair is appended to both neighbor orders.
//
// A self-loop (u == v) is stored once.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) error {
	au, okU := g.nodes[u]
	av, okV := g.nodes[v]
	switch {
	case !okU:
		return fmt.Errorf("%w: %q (edge %s-%s)", ErrNodeNotFound, u, u, v)
	case !okV:
		return fmt.Errorf("%w: %q (edge %s-%s)", ErrNodeNotFound, v, u, v)
	}
	if g.strict && (weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0)) {
		return fmt.Errorf("%w: edge %s-%s weight=%g", ErrBadWeight, u, v, weight)
	}

	if _, exists := au.weights[v]; !exists {
		au.order = append(au.order, v)
		if u != v {
			av.order = append(av.order, u)
		}
		g.edges++
	}
	au.weights[v] = weight
	av.weights[u] = weight
	g.logger.Debug("add_edge", zap.String("u", u), zap.String("v", v), zap.Float64("weight", weight))

	return nil
}

// Link adds u—v with DefaultWeight.
func (g *Graph) Link(u, v string) error {
	return g.AddEdge(u, v, DefaultWeight)
}

// RemoveEdge deletes u—v in both directions. Missing nodes or edges are a no-op.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v string) {
	removed := false
	if au, ok := g.nodes[u]; ok {
		if _, has := au.weights[v]; has {
			delete(au.weights, v)
			au.order = removeID(au.order, v)
			removed = true
		}
	}
	if av, ok := g.nodes[v]; ok && u != v {
		if _, has := av.weights[u]; has {
			delete(av.weights, u)
			av.order = removeID(av.order, u)
			removed = true
		}
	}
	if removed {
		g.edges--
	}
	g.logger.Debug("remove_edge", zap.String("u", u), zap.String("v", v), zap.Bool("existed", removed))
}

// HasEdge reports whether u—v exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.Weight(u, v)
	return ok
}

// Weight returns the weight of u—v and whether the edge exists.
func (g *Graph) Weight(u, v string) (float64, bool) {
	adj, ok := g.nodes[u]
	if !ok {
		return 0, false
	}
	w, ok := adj.weights[v]

	return w, ok
}

// Edges returns every undirected edge exactly once.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	done := make(map[string]bool, len(g.order))
	for _, u := range g.order {
		adj := g.nodes[u]
		for _, v := range adj.order {
			if done[v] {
				continue // emitted from v's side already
			}
			out = append(out, Edge{From: u, To: v, Weight: adj.weights[v]})
		}
		done[u] = true
	}

	return out
}

// EdgeCount returns the number of distinct undirected edges (self-loops count once).
func (g *Graph) EdgeCount() int { return g.edges }
