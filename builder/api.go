// SPDX-License-Identifier: MIT
// Package: oopsiroute/builder
//
// api.go: public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Constructors are declared here and implemented in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/oopsiroute/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Demo returns a constructor adding the five-node demonstration network:
//
//	A —1— B —2— C
//	|           |
//	2          2.5
//	|           |
//	D ———1.4——— E
//
// Shortest A→E is A-D-E (3.4), beating A-B-C-E (5.5).
func Demo() Constructor { return demo }

// RandomSparse returns a constructor for the benchmark workload: n nodes,
// and for every node i a uniform number of draws in [1, min(maxDegree, n-1)],
// each picking a random other node j and setting i—j to an integer weight in
// [1, maxWeight]. Requires an RNG.
func RandomSparse(n, maxDegree, maxWeight int) Constructor {
	return randomSparse(n, maxDegree, maxWeight)
}

// Path returns a constructor for a chain of n nodes with unit weights.
func Path(n int) Constructor { return path(n) }

// Grid returns a constructor for a rows×cols 4-connected lattice with unit
// weights. Node IDs are "r,c"; use GridPoint to recover coordinates.
func Grid(rows, cols int) Constructor { return grid(rows, cols) }

// FromSpec returns a constructor materializing a declarative GraphSpec.
func FromSpec(spec GraphSpec) Constructor { return fromSpec(spec) }
