// Package bfs provides breadth-first search over a core.Graph, returning the
// order in which nodes are first discovered, their hop distances, and parent links.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node using a FIFO frontier.
//   - Each node is visited at most once; nodes in other components are simply absent.
//   - Returns a Result containing:
//   - Order: discovery sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Edge weights are ignored.
//
// Determinism
//
//	core.Graph iterates neighbors in insertion order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible for a given
//	sequence of mutations.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "A")
//	if errors.Is(err, bfs.ErrStartNotFound) {
//	    // unknown start node
//	}
//	fmt.Println(res.Order)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrStartNotFound   if the start node does not exist.
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped OnVisit hook errors.
package bfs
