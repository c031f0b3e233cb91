package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/oopsiroute/core"
	"github.com/katalvlaran/oopsiroute/dijkstra"
	"github.com/katalvlaran/oopsiroute/internal/pq"
)

// AStar searches for a cheapest path from start to goal in g.
//
// The frontier is ordered by f(n) = g(n) + h(n, goal); g(n), the best known
// cost from start, is kept separately from the priority. The search stops as
// soon as goal is popped and the path is rebuilt with dijkstra.ReconstructPath.
//
// There is no closed set: a node whose g improves after it was expanded is
// pushed and expanded again. Entries whose cost is worse than the node's
// current g are stale and skipped.
//
// Errors: ErrGraphNil, ErrStartNotFound, ErrGoalNotFound. An unreachable goal
// is not an error: the Result has an empty Path and Cost = +Inf.
//
// Complexity: O((V + E) log V) with a consistent heuristic.
func AStar(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := cfg.Heuristic

	V := g.NodeCount()
	gScore := make(map[string]float64, V)
	prev := make(map[string]string, V)
	for _, v := range g.Nodes() {
		gScore[v] = math.Inf(1)
		prev[v] = ""
	}
	gScore[start] = 0

	open := pq.New(V)
	open.Push(pq.Item{ID: start, Priority: h(start, goal)})

	res := &Result{Cost: math.Inf(1)}
	for open.Len() > 0 {
		cur := open.Pop()
		if cur.Cost > gScore[cur.ID] {
			continue // stale
		}
		res.Expanded++
		if cur.ID == goal {
			break
		}

		gCur := gScore[cur.ID]
		g.EachNeighbor(cur.ID, func(nbr string, w float64) bool {
			tentative := gCur + w
			if tentative < gScore[nbr] {
				gScore[nbr] = tentative
				prev[nbr] = cur.ID
				open.Push(pq.Item{ID: nbr, Priority: tentative + h(nbr, goal), Cost: tentative})
			}
			return true
		})
	}

	res.Path = dijkstra.ReconstructPath(prev, start, goal)
	if len(res.Path) > 0 {
		res.Cost = gScore[goal]
	}

	return res, nil
}
