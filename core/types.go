// Package core defines the central Graph type: an adjacency map over named
// nodes joined by weighted undirected edges.
//
// This file declares Edge, Graph, GraphOption, the sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string (reserved as "no predecessor").
//	ErrNodeNotFound - an edge referenced a node that was never added.
//	ErrBadWeight    - negative, NaN or infinite weight on a strict graph.
package core

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultWeight is the weight used by Link, i.e. an edge whose weight is not specified.
const DefaultWeight = 1.0

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a weight rejected by a graph built WithStrictWeights.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Edge is a read-only snapshot of one undirected edge.
// For an edge returned by Graph.Edges, From was inserted into the graph before To
// (or From == To for a self-loop).
type Edge struct {
	From   string
	To     string
	Weight float64
}

// adjacency is the neighbor set of a single node.
// order keeps first-insertion order so iteration is reproducible.
type adjacency struct {
	order   []string
	weights map[string]float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictWeights makes AddEdge reject negative, NaN and infinite weights
// with ErrBadWeight. Weights are never rewritten, only refused.
func WithStrictWeights() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// WithLogger attaches a logger; every mutation is reported at debug level.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// Graph is an in-memory weighted undirected graph.
//
// nodes maps a node ID to its neighbor set; order lists node IDs in insertion order.
// The adjacency relation is symmetric: w(u,v) is stored under both u and v.
//
// Graph performs no internal locking. Callers that share a Graph between
// goroutines must serialize mutations themselves (see routing.Service).
type Graph struct {
	strict bool
	logger *zap.Logger

	order []string
	nodes map[string]*adjacency
	edges int // number of distinct undirected edges
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		logger: zap.NewNop(),
		nodes:  make(map[string]*adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Strict reports whether the graph was built WithStrictWeights.
func (g *Graph) Strict() bool { return g.strict }

// removeID drops the first occurrence of id from s, keeping the order of the rest.
func removeID(s []string, id string) []string {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
