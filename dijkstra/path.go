package dijkstra

// ReconstructPath walks the predecessor chain from end back to its root (the
// node whose predecessor is "") and returns the nodes from start to end
// inclusive.
//
// prev maps each node to its predecessor, with "" meaning "none"; this is the
// shape produced by Dijkstra and used internally by astar. The chain is a path
// only if its root is start: a chain that merely passes through start, or
// ends elsewhere, yields an empty (non-nil) slice. start == end yields [start]
// when start is a root.
//
// The walk is bounded by len(prev)+1 steps, so a malformed cyclic map yields
// an empty path instead of spinning.
//
// Complexity: O(path length).
func ReconstructPath(prev map[string]string, start, end string) []string {
	if end == "" {
		return []string{}
	}

	rev := []string{}
	limit := len(prev) + 1
	for at := end; at != ""; at = prev[at] {
		if len(rev) > limit {
			return []string{}
		}
		rev = append(rev, at)
	}
	if rev[len(rev)-1] != start {
		return []string{} // no path exists
	}

	// reverse to get start → end
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
