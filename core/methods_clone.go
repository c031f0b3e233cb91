// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package core

// Clone returns a deep copy: same options, nodes, edges and iteration order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		strict: g.strict,
		logger: g.logger,
		order:  make([]string, len(g.order)),
		nodes:  make(map[string]*adjacency, len(g.nodes)),
		edges:  g.edges,
	}
	copy(clone.order, g.order)
	for id, adj := range g.nodes {
		c := &adjacency{
			order:   make([]string, len(adj.order)),
			weights: make(map[string]float64, len(adj.weights)),
		}
		copy(c.order, adj.order)
		for k, w := range adj.weights {
			c.weights[k] = w
		}
		clone.nodes[id] = c
	}

	return clone
}

// Clear removes all nodes and edges but keeps the options.
func (g *Graph) Clear() {
	g.order = nil
	g.nodes = make(map[string]*adjacency)
	g.edges = 0
}
