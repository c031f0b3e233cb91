package astar

import (
	"errors"
	"math"
)

// Sentinel errors for A* execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("astar: start node not found")

	// ErrGoalNotFound is returned when the goal node is absent.
	ErrGoalNotFound = errors.New("astar: goal node not found")
)

// Heuristic estimates the remaining cost from node to goal.
// It must return a non-negative value; an admissible heuristic (never
// overestimating) keeps the returned path optimal. Admissibility is not checked.
type Heuristic func(node, goal string) float64

// Zero is the default heuristic. With it A* explores exactly like Dijkstra.
func Zero(string, string) float64 { return 0 }

// Options configures AStar.
type Options struct {
	Heuristic Heuristic
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// DefaultOptions returns Options using the Zero heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Zero}
}

// WithHeuristic replaces the Zero heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Result is the outcome of one AStar call.
//
// Path runs from start to goal inclusive and is empty (non-nil) when the goal
// is unreachable, in which case Cost is +Inf. Expanded counts frontier pops
// that were not stale.
type Result struct {
	Path     []string
	Cost     float64
	Expanded int
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return len(r.Path) > 0 && !math.IsInf(r.Cost, 1) }
