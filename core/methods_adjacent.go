// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, EachNeighbor, Degree).
// Determinism:
//   - NeighborIDs() and EachNeighbor() follow neighbor insertion order.
//   - Neighbors() returns a map; use the ordered variants when order matters.

package core

// Neighbors returns a copy of the neighbor→weight map of id.
// Unknown ids yield an empty, non-nil map; this never fails.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) map[string]float64 {
	adj, ok := g.nodes[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(adj.weights))
	for k, w := range adj.weights {
		out[k] = w
	}

	return out
}

// NeighborIDs returns the neighbors of id in insertion order (nil for unknown ids).
func (g *Graph) NeighborIDs(id string) []string {
	adj, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]string, len(adj.order))
	copy(out, adj.order)

	return out
}

// EachNeighbor calls fn for every neighbor of id in insertion order,
// stopping early when fn returns false. Unknown ids are silently skipped.
//
// The algorithms packages use this instead of Neighbors to avoid a map copy
// per expanded node. fn must not mutate the graph.
func (g *Graph) EachNeighbor(id string, fn func(nbr string, weight float64) bool) {
	adj, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, nbr := range adj.order {
		if !fn(nbr, adj.weights[nbr]) {
			return
		}
	}
}

// Degree returns the number of neighbors of id (0 for unknown ids).
func (g *Graph) Degree(id string) int {
	adj, ok := g.nodes[id]
	if !ok {
		return 0
	}

	return len(adj.order)
}
