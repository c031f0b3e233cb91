// SPDX-License-Identifier: MIT
// Package: oopsiroute/builder
//
// impl_random_sparse.go: the random sparse benchmark workload.
//
// Contract:
//   • n ≥ 2, maxDegree ≥ 1, maxWeight ≥ 1, RNG required.
//   • Nodes are added in index order, so IDs are idFn(0..n-1).
//   • A draw that hits i itself is skipped; a draw that hits an existing
//     neighbor overwrites its weight.
//   • Same seed ⇒ same graph.

package builder

import "github.com/katalvlaran/oopsiroute/core"

const (
	methodRandomSparse = "RandomSparse"
	minSparseNodes     = 2
)

func randomSparse(n, maxDegree, maxWeight int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return builderErrorf(methodRandomSparse, ErrTooFewNodes, "n=%d < %d", n, minSparseNodes)
		}
		if maxDegree < 1 {
			return builderErrorf(methodRandomSparse, ErrBadParameter, "maxDegree=%d < 1", maxDegree)
		}
		if maxWeight < 1 {
			return builderErrorf(methodRandomSparse, ErrBadParameter, "maxWeight=%d < 1", maxWeight)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "WithSeed or WithRand is required")
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddNode(ids[i]); err != nil {
				return constructErrorf(methodRandomSparse, err, "AddNode(%s)", ids[i])
			}
		}

		limit := maxDegree
		if n-1 < limit {
			limit = n - 1
		}

		var draws, j int
		for i := 0; i < n; i++ {
			draws = cfg.rng.Intn(limit) + 1
			for k := 0; k < draws; k++ {
				j = cfg.rng.Intn(n)
				if j == i {
					continue
				}
				w := float64(cfg.rng.Intn(maxWeight) + 1)
				if err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return constructErrorf(methodRandomSparse, err, "AddEdge(%s,%s)", ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
