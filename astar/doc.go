// Package astar implements A* search over a core.Graph with a pluggable
// heuristic.
//
// A* is Dijkstra with a different frontier key: nodes are ordered by
// g(n) + h(n, goal) instead of g(n). The heuristic is a plain function value
// (type Heuristic); the default, Zero, makes the search degenerate exactly to
// Dijkstra, so both return the same path on any graph with non-negative weights.
//
// Heuristics shipped with the package:
//
//   - Zero:      always 0.
//   - Euclidean: planar straight-line distance from a coordinate table.
//   - Haversine: great-circle distance (optionally divided by a speed) from a
//     latitude/longitude table.
//
// A heuristic that overestimates the remaining cost may yield a non-optimal
// path; this is the caller's responsibility and is not validated.
//
// Usage:
//
//	res, err := astar.AStar(g, "A", "E", astar.WithHeuristic(astar.Euclidean(coords)))
//	if err != nil {
//	    return err
//	}
//	if !res.Found() {
//	    // no path
//	}
package astar
