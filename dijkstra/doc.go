// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over a core.Graph with non-negative edge weights, plus ReconstructPath, the
// predecessor-walk shared with the astar package.
//
// Overview:
//
//   - dist[source] = 0, every other node starts at +Inf with predecessor "".
//   - A min-heap frontier always extracts the unsettled node with the smallest
//     tentative distance; each neighbor whose distance strictly improves gets a
//     new distance, a new predecessor, and a fresh heap entry.
//   - WithTarget stops as soon as the target is extracted. This does not change
//     the target's distance: nodes leave the heap in non-decreasing distance
//     order, so a popped node's distance is already final.
//
// Preconditions:
//
//   - All edge weights must be non-negative. This is documented, not checked:
//     with negative weights the results are undefined. Build the graph with
//     core.WithStrictWeights() to have bad weights refused at insertion.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key may hold up to E heap entries)
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error)
//	func ReconstructPath(prev map[string]string, start, end string) []string
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithTarget("E"))
//	if err != nil {
//	    return err
//	}
//	path := dijkstra.ReconstructPath(res.Prev, "A", "E") // or res.PathTo("E")
//	if len(path) == 0 {
//	    // no path; res.Dist["E"] is +Inf
//	}
//
// Thread safety:
//
//   - Dijkstra only reads the graph. Concurrent queries are safe as long as no
//     goroutine mutates the graph at the same time.
package dijkstra
