package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oopsiroute/internal/config"
)

func TestDefault_Valid(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, []int{10, 50, 100, 500, 1000}, cfg.Bench.Sizes)
	assert.True(t, cfg.Graph.Empty())
}

func TestRead_Overlay(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(`
server:
  addr: 127.0.0.1:8080
routing:
  algorithm: astar
  heuristic: euclidean
graph:
  nodes: [x, y]
  edges:
    - {from: x, to: y, weight: 2.5}
  coordinates:
    x: {x: 0, y: 0}
    y: {x: 1, y: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode, "untouched field keeps its default")
	assert.Equal(t, config.AlgorithmAStar, cfg.Routing.Algorithm)
	require.Len(t, cfg.Graph.Edges, 1)
	require.NotNil(t, cfg.Graph.Edges[0].Weight)
	assert.Equal(t, 2.5, *cfg.Graph.Edges[0].Weight)
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"algorithm", "routing: {algorithm: bellman}"},
		{"heuristic", "routing: {heuristic: manhattan}"},
		{"log level", "log: {level: loud}"},
		{"mode", "server: {mode: prod}"},
		{"addr", "server: {addr: nowhere}"},
		{"bench size", "bench: {sizes: [1]}"},
		{"max degree", "bench: {max_degree: 0}"},
		{"edge without endpoint", "graph: {nodes: [a], edges: [{from: a}]}"},
		{"missing coordinates", `
routing: {algorithm: astar, heuristic: euclidean}
graph: {nodes: [a, b], coordinates: {a: {x: 0, y: 0}}}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Read(strings.NewReader(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestRead_UnknownField(t *testing.T) {
	_, err := config.Read(strings.NewReader("sever: {addr: ':1'}"))
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oopsiroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: debug, format: console}\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
