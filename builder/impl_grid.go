// SPDX-License-Identifier: MIT
// Package: oopsiroute/builder
//
// impl_grid.go: rows×cols 4-neighborhood lattice with unit weights.
//
// IDs are "r,c" (row-major insertion). Grid IDs ignore WithIDScheme because
// GridPoint must be able to decode them.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/oopsiroute/core"
)

const methodGrid = "Grid"

// GridID returns the node ID of cell (r, c).
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// GridPoint decodes a GridID into a Coordinate with X=c and Y=r.
func GridPoint(id string) (Coordinate, error) {
	rs, cs, ok := strings.Cut(id, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: grid id %q", ErrBadParameter, id)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: grid id %q: %v", ErrBadParameter, id, err)
	}
	c, err := strconv.Atoi(cs)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: grid id %q: %v", ErrBadParameter, id, err)
	}

	return Coordinate{X: float64(c), Y: float64(r)}, nil
}

// GridCoordinates returns the coordinate of every cell of a rows×cols grid.
func GridCoordinates(rows, cols int) map[string]Coordinate {
	out := make(map[string]Coordinate, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[GridID(r, c)] = Coordinate{X: float64(c), Y: float64(r)}
		}
	}

	return out
}

func grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < 1 || cols < 1 {
			return builderErrorf(methodGrid, ErrTooFewNodes, "rows=%d, cols=%d; both must be ≥ 1", rows, cols)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddNode(GridID(r, c)); err != nil {
					return constructErrorf(methodGrid, err, "AddNode(%s)", GridID(r, c))
				}
			}
		}
		var err error
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = g.Link(GridID(r, c), GridID(r, c+1)); err != nil {
						return constructErrorf(methodGrid, err, "Link")
					}
				}
				if r+1 < rows {
					if err = g.Link(GridID(r, c), GridID(r+1, c)); err != nil {
						return constructErrorf(methodGrid, err, "Link")
					}
				}
			}
		}

		return nil
	}
}
