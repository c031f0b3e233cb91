package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oopsiroute/bfs"
	"github.com/katalvlaran/oopsiroute/core"
)

// graphOf creates a graph with the given nodes (in order) and unit-weight edges.
func graphOf(t *testing.T, nodes []string, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range nodes {
		require.NoError(t, g.AddNode(id))
	}
	for _, e := range edges {
		require.NoError(t, g.Link(e[0], e[1]))
	}

	return g
}

// demoGraph is A—B(1), B—C(2), A—D(2), D—E(1.4), C—E(2.5).
func demoGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := graphOf(t, []string{"A", "B", "C", "D", "E"})
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "D", 2))
	require.NoError(t, g.AddEdge("D", "E", 1.4))
	require.NoError(t, g.AddEdge("C", "E", 2.5))

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	require.NoError(t, g.AddNode("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DemoGraphCompleteness(t *testing.T) {
	res, err := bfs.BFS(demoGraph(t), "A")
	require.NoError(t, err)

	// A's neighbors in insertion order are B, D; B brings C; D brings E.
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Len(t, res.Order, 5, "every node exactly once")

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2, "E": 2}, res.Depth)
	assert.Equal(t, "A", res.Parent["B"])
	assert.Equal(t, "D", res.Parent["E"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent)
}

func TestBFS_SingleNode(t *testing.T) {
	res, err := bfs.BFS(graphOf(t, []string{"A"}), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
}

func TestBFS_Disconnected(t *testing.T) {
	g := graphOf(t, []string{"X", "Y", "P", "Q", "Z"},
		[2]string{"X", "Y"}, [2]string{"P", "Q"})

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)
	assert.False(t, res.Reached("P"))

	res, err = bfs.BFS(g, "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, res.Order)
}

func TestBFS_NeighborOrderFollowsInsertion(t *testing.T) {
	// Same topology, edges linked in different orders.
	g1 := graphOf(t, []string{"S", "x", "y", "z"},
		[2]string{"S", "x"}, [2]string{"S", "y"}, [2]string{"S", "z"})
	g2 := graphOf(t, []string{"S", "x", "y", "z"},
		[2]string{"S", "z"}, [2]string{"S", "x"}, [2]string{"S", "y"})

	r1, err := bfs.BFS(g1, "S")
	require.NoError(t, err)
	r2, err := bfs.BFS(g2, "S")
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "x", "y", "z"}, r1.Order)
	assert.Equal(t, []string{"S", "z", "x", "y"}, r2.Order)
}

func TestBFS_CycleVisitsOnce(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D"},
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
	require.NoError(t, g.Link("A", "A"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, 2, res.Depth["C"])
}

func TestBFS_MaxDepth(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	tests := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range tests {
		res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop here")
	var visited []string
	_, err := bfs.BFS(demoGraph(t), "A", bfs.WithOnVisit(func(id string, _ int) error {
		visited = append(visited, id)
		if id == "D" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "D"}, visited)
}

func TestResult_PathTo(t *testing.T) {
	res, err := bfs.BFS(demoGraph(t), "A")
	require.NoError(t, err)

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "E"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)

	_, err = res.PathTo("nowhere")
	assert.Error(t, err)
}

func TestBFS_DoesNotMutateGraph(t *testing.T) {
	g := demoGraph(t)
	before := g.Edges()
	_, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}
