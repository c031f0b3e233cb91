package routing_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/oopsiroute/builder"
	"github.com/katalvlaran/oopsiroute/core"
	"github.com/katalvlaran/oopsiroute/routing"
)

func newDemoService(t *testing.T, opts ...routing.Option) *routing.Service {
	t.Helper()
	svc, err := routing.New(builder.NewDemo(), opts...)
	require.NoError(t, err)
	return svc
}

func TestRoute_Demo(t *testing.T) {
	ctx := context.Background()

	for _, algo := range []routing.Algorithm{routing.AlgorithmDijkstra, routing.AlgorithmAStar} {
		algo := algo
		t.Run(string(algo), func(t *testing.T) {
			svc := newDemoService(t, routing.WithAlgorithm(algo))

			r, err := svc.Route(ctx, "A", "E")
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "D", "E"}, r.Path)
			assert.InDelta(t, 3.4, r.Distance, 1e-9)
			assert.Equal(t, algo, r.Algorithm)

			r, err = svc.Route(ctx, "C", "C")
			require.NoError(t, err)
			assert.Equal(t, []string{"C"}, r.Path)
			assert.Zero(t, r.Distance)
		})
	}
}

func TestRoute_AStarEuclidean(t *testing.T) {
	h, err := routing.NewHeuristic("euclidean", builder.DemoCoordinates(), 0)
	require.NoError(t, err)
	svc := newDemoService(t, routing.WithAlgorithm(routing.AlgorithmAStar), routing.WithHeuristic(h))

	r, err := svc.Route(context.Background(), "B", "E")
	require.NoError(t, err)
	assert.InDelta(t, 4.4, r.Distance, 1e-9)
	assert.Equal(t, []string{"B", "A", "D", "E"}, r.Path)
}

func TestRoute_Errors(t *testing.T) {
	svc := newDemoService(t)
	require.NoError(t, svc.AddNode("Z"))

	_, err := svc.Route(context.Background(), "A", "X")
	assert.ErrorIs(t, err, routing.ErrUnknownNode)
	assert.Contains(t, err.Error(), "A, X")

	_, err = svc.Route(context.Background(), "A", "Z")
	assert.ErrorIs(t, err, routing.ErrNoPath)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Route(ctx, "A", "E")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReachability(t *testing.T) {
	svc := newDemoService(t)

	order, err := svc.Reachability(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, order)

	_, err = svc.Reachability(context.Background(), "Q")
	assert.ErrorIs(t, err, routing.ErrUnknownNode)
}

func TestMutations(t *testing.T) {
	svc := newDemoService(t)
	ctx := context.Background()

	svc.RemoveEdge("D", "E")
	r, err := svc.Route(ctx, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "E"}, r.Path)
	assert.InDelta(t, 5.5, r.Distance, 1e-9)

	require.NoError(t, svc.AddNode("F"))
	require.NoError(t, svc.AddEdge("A", "F", 0.5))
	require.NoError(t, svc.AddEdge("F", "E", 0.5))
	r, err = svc.Route(ctx, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "F", "E"}, r.Path)

	err = svc.AddEdge("A", "ghost", 1)
	assert.ErrorIs(t, err, routing.ErrUnknownNode)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.True(t, svc.RemoveNode("F"))
	assert.False(t, svc.RemoveNode("F"))

	snap := svc.Snapshot()
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, snap.Nodes)
	assert.Equal(t, 5, snap.NodeCount)
	assert.Equal(t, 4, snap.EdgeCount)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := newDemoService(t, routing.WithRegisterer(reg))
	ctx := context.Background()

	_, _ = svc.Route(ctx, "A", "E")
	_, _ = svc.Route(ctx, "A", "E")
	_, _ = svc.Route(ctx, "A", "nope")
	_, _ = svc.Reachability(ctx, "A")

	n, err := testutil.GatherAndCount(reg, "oopsiroute_queries_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "route/ok, route/unknown_node, reachability/ok")

	_, err = routing.New(core.NewGraph(), routing.WithRegisterer(reg))
	assert.Error(t, err, "collectors already registered")
}

func TestLogging(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	svc := newDemoService(t, routing.WithLogger(zap.New(obs)))

	_, err := svc.Route(context.Background(), "A", "E")
	require.NoError(t, err)

	entries := logs.FilterMessage("route").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].ContextMap()["src"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["hops"])
}

func TestNew_Validation(t *testing.T) {
	_, err := routing.New(nil)
	assert.Error(t, err)

	_, err = routing.New(core.NewGraph(), routing.WithAlgorithm("bellman-ford"))
	assert.ErrorIs(t, err, routing.ErrAlgorithm)

	a, err := routing.ParseAlgorithm("AStar")
	require.NoError(t, err)
	assert.Equal(t, routing.AlgorithmAStar, a)

	_, err = routing.NewHeuristic("manhattan", nil, 1)
	assert.ErrorIs(t, err, routing.ErrAlgorithm)
}

func TestNewHeuristic_Haversine(t *testing.T) {
	coords := map[string]builder.Coordinate{
		"mtl": {X: -73.5673, Y: 45.5017},
		"tor": {X: -79.3832, Y: 43.6532},
	}
	h, err := routing.NewHeuristic("haversine", coords, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 504, h("mtl", "tor"), 5, "kilometers")
	assert.Zero(t, h("mtl", "unknown"))
}

// Queries and mutations may interleave freely; every answer must come from a
// consistent graph.
func TestConcurrentAccess(t *testing.T) {
	svc := newDemoService(t)
	ctx := context.Background()

	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		eg.Go(func() error {
			id := fmt.Sprintf("n%d", i)
			if err := svc.AddNode(id); err != nil {
				return err
			}
			return svc.AddEdge("A", id, float64(i+1))
		})
		eg.Go(func() error {
			r, err := svc.Route(ctx, "A", "E")
			if err != nil {
				return err
			}
			if math.Abs(r.Distance-3.4) > 1e-9 {
				return fmt.Errorf("distance %v", r.Distance)
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, 13, svc.Snapshot().NodeCount)
}
