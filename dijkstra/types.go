// Package dijkstra defines the options, result and sentinel errors of
// Dijkstra's shortest-path algorithm over a core.Graph.
//
// Options:
//
//	– WithTarget:      stop as soon as the target node is extracted from the frontier.
//	– WithMaxDistance: stop once the smallest frontier distance exceeds the cap.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if the provided graph pointer is nil.
//	– ErrSourceNotFound  if the source node does not exist in the graph.
//	– ErrTargetNotFound  if WithTarget names a node that does not exist.
//	– ErrOptionViolation if an option received a meaningless value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source node does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source node not found")

	// ErrTargetNotFound indicates that the early-exit target does not exist.
	ErrTargetNotFound = errors.New("dijkstra: target node not found")

	// ErrOptionViolation indicates an invalid Option value (e.g. negative MaxDistance).
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Target      – if non-empty, the search stops when Target is extracted.
// MaxDistance – nodes farther than this are never settled. Default +Inf.
type Options struct {
	Target      string
	MaxDistance float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no target and no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithTarget enables early exit: extraction stops as soon as target is popped.
// The distance to target is already final at that point because nodes are
// extracted in non-decreasing distance order under non-negative weights.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max keep +Inf.
// Negative or NaN values are recorded as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds per-query state produced by one Dijkstra call.
//
// Dist has an entry for every node of the graph: the best distance found,
// or +Inf if the node was not reached. Prev has an entry for every node:
// the predecessor on the best path found, or "" for the source and for
// unreached nodes. With WithTarget, both maps reflect the search at the
// moment the target was extracted.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string

	// Settled counts nodes whose distance was finalized.
	Settled int
}

// DistanceTo returns the distance to id (+Inf if unreached or unknown).
func (r *Result) DistanceTo(id string) float64 {
	d, ok := r.Dist[id]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// PathTo reconstructs the path from the source to id; empty when unreachable.
func (r *Result) PathTo(id string) []string {
	return ReconstructPath(r.Prev, r.Source, id)
}
