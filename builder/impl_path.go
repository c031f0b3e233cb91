// SPDX-License-Identifier: MIT
// Package: oopsiroute/builder
//
// impl_path.go: chain P_n with unit weights.

package builder

import "github.com/katalvlaran/oopsiroute/core"

const methodPath = "Path"

func path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return builderErrorf(methodPath, ErrTooFewNodes, "n=%d < 2", n)
		}
		prev := ""
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddNode(id); err != nil {
				return constructErrorf(methodPath, err, "AddNode(%s)", id)
			}
			if prev != "" {
				if err := g.Link(prev, id); err != nil {
					return constructErrorf(methodPath, err, "Link(%s,%s)", prev, id)
				}
			}
			prev = id
		}

		return nil
	}
}
