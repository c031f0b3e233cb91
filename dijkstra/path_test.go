package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oopsiroute/builder"
	"github.com/katalvlaran/oopsiroute/dijkstra"
)

func TestReconstructPath(t *testing.T) {
	prev := map[string]string{"A": "", "B": "A", "C": "B", "D": "", "Z": ""}

	tests := []struct {
		name       string
		start, end string
		want       []string
	}{
		{"full chain", "A", "C", []string{"A", "B", "C"}},
		{"start equals end", "A", "A", []string{"A"}},
		{"unreached end", "A", "Z", []string{}},
		{"chain misses start", "D", "C", []string{}},
		{"end not in map", "A", "Q", []string{}},
		{"empty end", "A", "", []string{}},
		{"chain passes through start", "B", "C", []string{}},
		{"start equals end off root", "B", "B", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dijkstra.ReconstructPath(prev, tc.start, tc.end))
		})
	}
}

func TestReconstructPath_CyclicMapTerminates(t *testing.T) {
	prev := map[string]string{"A": "", "B": "C", "C": "B"}
	assert.Empty(t, dijkstra.ReconstructPath(prev, "A", "B"))
}

// A Prev map rooted at A describes paths from A only: D lies on the A→E
// chain but is not its root.
func TestReconstructPath_RootMustBeStart(t *testing.T) {
	res, err := dijkstra.Dijkstra(builder.NewDemo(), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "D", "E"}, dijkstra.ReconstructPath(res.Prev, "A", "E"))
	assert.Empty(t, dijkstra.ReconstructPath(res.Prev, "D", "E"))
	assert.Empty(t, dijkstra.ReconstructPath(res.Prev, "E", "E"))
	assert.Equal(t, []string{"A"}, dijkstra.ReconstructPath(res.Prev, "A", "A"))
}
