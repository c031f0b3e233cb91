// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Notes on implementation choices:
//
//   - Weights are not scanned for negatives up front; non-negative weights are a
//     precondition (see core.WithStrictWeights for opt-in validation).
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries (already settled) when popped.
//   - Equal-distance entries pop in node-ID order, so results are reproducible.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/oopsiroute/core"
	"github.com/katalvlaran/oopsiroute/internal/pq"
)

// Dijkstra computes shortest distances from source to every reachable node of g.
//
// Returns a Result whose Dist and Prev maps cover every node of g
// (unreached: +Inf and ""). With WithTarget the search stops as soon as the
// target is extracted and the maps hold the state at that moment.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must contain source (ErrSourceNotFound).
//  4. g must contain the target, if one is set (ErrTargetNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if cfg.Target != "" && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}

	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make(map[string]float64, V),
			Prev:   make(map[string]string, V),
		},
		settled: make(map[string]bool, V),
		pq:      pq.New(V),
	}
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // read-only within Dijkstra
	options Options         // target and distance cap
	res     *Result         // dist/prev maps being filled
	settled map[string]bool // nodes whose distance is final
	pq      *pq.MinHeap     // lazy frontier
}

// init sets dist[v]=+Inf and prev[v]="" for all v, then dist[source]=0 and
// pushes the source.
func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = "" // no predecessor yet
	}
	r.res.Dist[r.res.Source] = 0
	r.pq.Push(pq.Item{ID: r.res.Source})
}

// process repeatedly extracts the closest unsettled node and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The target is extracted.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := r.pq.Pop()
		u := item.ID

		// Skip stale heap entries.
		if r.settled[u] {
			continue
		}
		if item.Priority > r.options.MaxDistance {
			break
		}
		r.settled[u] = true
		r.res.Settled++

		if u == r.options.Target {
			break
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbor of u through u.
// Only strictly shorter paths update dist/prev and push a new heap entry.
func (r *runner) relax(u string) {
	du := r.res.Dist[u]
	r.g.EachNeighbor(u, func(v string, w float64) bool {
		if r.settled[v] {
			return true
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.res.Dist[v] {
			return true
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		r.pq.Push(pq.Item{ID: v, Priority: nd, Cost: nd})

		return true
	})
}
