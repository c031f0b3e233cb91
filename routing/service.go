package routing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/oopsiroute/astar"
	"github.com/katalvlaran/oopsiroute/bfs"
	"github.com/katalvlaran/oopsiroute/core"
	"github.com/katalvlaran/oopsiroute/dijkstra"
)

const (
	opRoute        = "route"
	opReachability = "reachability"
)

// Service answers queries over a graph that may be mutated concurrently.
type Service struct {
	mu sync.RWMutex
	g  *core.Graph

	algorithm  Algorithm
	heuristic  astar.Heuristic
	logger     *zap.Logger
	registerer prometheus.Registerer
	metrics    *metrics
}

// New wraps g. The Service takes ownership: callers must not mutate g
// afterwards except through the Service.
func New(g *core.Graph, opts ...Option) (*Service, error) {
	if g == nil {
		return nil, errors.New("routing: graph is nil")
	}
	s := &Service{
		g:         g,
		algorithm: AlgorithmDijkstra,
		heuristic: astar.Zero,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := ParseAlgorithm(string(s.algorithm)); err != nil {
		return nil, err
	}
	m, err := newMetrics(s.registerer)
	if err != nil {
		return nil, err
	}
	s.metrics = m

	return s, nil
}

// Algorithm reports the search Route uses.
func (s *Service) Algorithm() Algorithm { return s.algorithm }

// Route returns the shortest path from src to dst.
//
// Errors:
//   - ErrUnknownNode when src or dst is not in the graph.
//   - ErrNoPath when both exist but dst is unreachable.
//   - ctx.Err() when ctx is already done.
func (s *Service) Route(ctx context.Context, src, dst string) (Route, error) {
	start := time.Now()
	route, err := s.route(ctx, src, dst)
	s.metrics.observe(opRoute, resultOf(err), start)

	fields := []zap.Field{
		zap.String("src", src),
		zap.String("dst", dst),
		zap.String("algorithm", string(s.algorithm)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		s.logger.Debug("route failed", append(fields, zap.Error(err))...)
		return Route{}, err
	}
	s.logger.Debug("route", append(fields, zap.Float64("distance", route.Distance), zap.Int("hops", len(route.Path)-1))...)

	return route, nil
}

func (s *Service) route(ctx context.Context, src, dst string) (Route, error) {
	if err := ctx.Err(); err != nil {
		return Route{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.g.HasNode(src) || !s.g.HasNode(dst) {
		return Route{}, fmt.Errorf("%w: %s, %s", ErrUnknownNode, src, dst)
	}

	r := Route{Source: src, Destination: dst, Algorithm: s.algorithm}
	switch s.algorithm {
	case AlgorithmAStar:
		res, err := astar.AStar(s.g, src, dst, astar.WithHeuristic(s.heuristic))
		if err != nil {
			return Route{}, fmt.Errorf("routing: astar: %w", err)
		}
		r.Path, r.Distance = res.Path, res.Cost
	default:
		res, err := dijkstra.Dijkstra(s.g, src, dijkstra.WithTarget(dst))
		if err != nil {
			return Route{}, fmt.Errorf("routing: dijkstra: %w", err)
		}
		r.Path, r.Distance = res.PathTo(dst), res.DistanceTo(dst)
	}
	if len(r.Path) == 0 {
		return Route{}, fmt.Errorf("%w: between %s and %s", ErrNoPath, src, dst)
	}

	return r, nil
}

// Reachability returns every node reachable from start in BFS order.
// ErrUnknownNode when start is not in the graph.
func (s *Service) Reachability(ctx context.Context, start string) ([]string, error) {
	began := time.Now()
	order, err := s.reachability(ctx, start)
	s.metrics.observe(opReachability, resultOf(err), began)
	if err != nil {
		s.logger.Debug("reachability failed", zap.String("start", start), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("reachability", zap.String("start", start), zap.Int("reached", len(order)))

	return order, nil
}

func (s *Service) reachability(ctx context.Context, start string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res, err := bfs.BFS(s.g, start)
	if errors.Is(err, bfs.ErrStartNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, start)
	}
	if err != nil {
		return nil, fmt.Errorf("routing: bfs: %w", err)
	}

	return res.Order, nil
}

// AddNode adds id to the graph; adding an existing node is a no-op.
func (s *Service) AddNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddNode(id)
}

// RemoveNode deletes id and its edges. It reports whether id existed.
func (s *Service) RemoveNode(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveNode(id)
}

// AddEdge sets the weight of u—v. Unknown endpoints yield ErrUnknownNode
// wrapping core.ErrNodeNotFound.
func (s *Service) AddEdge(u, v string, w float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.g.AddEdge(u, v, w)
	if errors.Is(err, core.ErrNodeNotFound) {
		return fmt.Errorf("%w: %w", ErrUnknownNode, err)
	}

	return err
}

// RemoveEdge deletes u—v if present.
func (s *Service) RemoveEdge(u, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.g.RemoveEdge(u, v)
}

// Snapshot returns the node list and counts.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Nodes:     s.g.Nodes(),
		NodeCount: s.g.NodeCount(),
		EdgeCount: s.g.EdgeCount(),
	}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrUnknownNode):
		return resultUnknownNode
	case errors.Is(err, ErrNoPath):
		return resultNoPath
	default:
		return resultError
	}
}
