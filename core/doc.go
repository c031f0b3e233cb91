// Package core provides the in-memory weighted undirected Graph that the
// bfs, dijkstra and astar packages operate on.
//
// The Graph G = (V,E) is an adjacency map:
//
//	nodes[u].weights[v] = w   and   nodes[v].weights[u] = w
//
// Every mutation writes both directions in a single call, so the symmetry
// invariant w(u,v) == w(v,u) can never be observed broken.
//
// Determinism:
//
//	Go maps iterate in random order, so each node also keeps the order in
//	which its neighbors were first linked, and the graph keeps the order in
//	which nodes were added. Nodes(), NeighborIDs(), EachNeighbor() and Edges()
//	all follow that insertion order. Overwriting an existing edge's weight does
//	not move it.
//
// Configuration Options (GraphOption):
//
//	– WithStrictWeights()
//	    AddEdge rejects negative, NaN and infinite weights with ErrBadWeight.
//	    Without it no validation is performed: shortest-path results over
//	    negative weights are undefined, but weights are stored as given.
//
//	– WithLogger(*zap.Logger)
//	    Mutations are logged at debug level. Defaults to zap.NewNop().
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string) error            // O(1), idempotent
//	RemoveNode(id string) bool          // O(V + Σdeg), false when absent
//	HasNode(id string) bool             // O(1)
//	Nodes() []string                    // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(u, v string, w float64) error // O(1); ErrNodeNotFound if u or v unknown
//	Link(u, v string) error               // AddEdge with DefaultWeight (1.0)
//	RemoveEdge(u, v string)               // no-op when absent
//	Weight(u, v string) (float64, bool)
//	Edges() []Edge                        // each undirected edge once
//
//	// Neighborhood
//	Neighbors(id string) map[string]float64 // copy; empty map for unknown ids
//	NeighborIDs(id string) []string
//	EachNeighbor(id string, fn func(string, float64) bool)
//
// Concurrency:
//
//	Graph is not synchronized. Wrap it (routing.Service does) when mutations
//	and queries may run on different goroutines.
package core
