// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order.
package core

import "go.uber.org/zap"

// AddNode inserts a node with an empty neighbor set if missing (idempotent).
//
// Returns:
//   - error: nil on success; ErrEmptyNodeID if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return nil // no-op for existing node
	}

	g.nodes[id] = &adjacency{weights: make(map[string]float64)}
	g.order = append(g.order, id)
	g.logger.Debug("add_node", zap.String("node", id))

	return nil
}

// RemoveNode deletes id and every edge touching it.
// It reports whether the node existed; removing an unknown node is a no-op.
//
// Steps:
//  1. Look up id; absent ⇒ log and return false.
//  2. Delete id from each neighbor's set (symmetry makes id's own set the full list).
//  3. Drop id from the node catalog and insertion order.
//
// Complexity: O(V + Σ deg(neighbor)).
func (g *Graph) RemoveNode(id string) bool {
	adj, ok := g.nodes[id]
	if !ok {
		g.logger.Debug("remove_node: node does not exist", zap.String("node", id))
		return false
	}

	for _, nbr := range adj.order {
		if nbr == id {
			continue // self-loop lives in adj itself
		}
		other := g.nodes[nbr]
		delete(other.weights, id)
		other.order = removeID(other.order, id)
	}
	g.edges -= len(adj.order)

	delete(g.nodes, id)
	g.order = removeID(g.order, id)
	g.logger.Debug("remove_node", zap.String("node", id))

	return true
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns a copy of all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }
