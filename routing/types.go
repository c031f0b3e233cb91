package routing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/oopsiroute/astar"
	"github.com/katalvlaran/oopsiroute/builder"
)

var (
	// ErrUnknownNode indicates a query named a node absent from the graph.
	ErrUnknownNode = errors.New("routing: node not found")

	// ErrNoPath indicates both nodes exist but are not connected.
	ErrNoPath = errors.New("routing: no path")

	// ErrAlgorithm indicates an unsupported algorithm or heuristic name.
	ErrAlgorithm = errors.New("routing: unsupported algorithm")
)

// Algorithm names the shortest-path search used by Route.
type Algorithm string

const (
	AlgorithmDijkstra Algorithm = "dijkstra"
	AlgorithmAStar    Algorithm = "astar"
)

// ParseAlgorithm maps a configuration name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(name)); a {
	case AlgorithmDijkstra, AlgorithmAStar:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrAlgorithm, name)
	}
}

// NewHeuristic builds an A* heuristic by name ("zero", "euclidean",
// "haversine"). Coordinates are planar X/Y for euclidean; for haversine X is
// longitude and Y latitude, and distances in meters are divided by speed.
func NewHeuristic(name string, coords map[string]builder.Coordinate, speed float64) (astar.Heuristic, error) {
	switch strings.ToLower(name) {
	case "", "zero":
		return astar.Zero, nil
	case "euclidean":
		pts := make(map[string]astar.Point, len(coords))
		for id, c := range coords {
			pts[id] = astar.Point{X: c.X, Y: c.Y}
		}
		return astar.Euclidean(pts), nil
	case "haversine":
		pts := make(map[string]astar.LatLon, len(coords))
		for id, c := range coords {
			pts[id] = astar.LatLon{Lat: c.Y, Lon: c.X}
		}
		return astar.Haversine(pts, speed), nil
	default:
		return nil, fmt.Errorf("%w: heuristic %q", ErrAlgorithm, name)
	}
}

// Route is the answer to a shortest-path query.
type Route struct {
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Path        []string  `json:"path"`
	Distance    float64   `json:"distance"`
	Algorithm   Algorithm `json:"algorithm"`
}

// Snapshot is a point-in-time view of the served graph.
type Snapshot struct {
	Nodes     []string `json:"nodes"`
	NodeCount int      `json:"node_count"`
	EdgeCount int      `json:"edge_count"`
}

// Option configures a Service.
type Option func(*Service)

// WithAlgorithm selects the search used by Route. Defaults to Dijkstra.
func WithAlgorithm(a Algorithm) Option {
	return func(s *Service) { s.algorithm = a }
}

// WithHeuristic sets the A* heuristic. Ignored for Dijkstra; nil means astar.Zero.
func WithHeuristic(h astar.Heuristic) Option {
	return func(s *Service) {
		if h != nil {
			s.heuristic = h
		}
	}
}

// WithLogger sets the service logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegisterer registers the service collectors on reg.
// Without it the collectors exist but are not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) { s.registerer = reg }
}
