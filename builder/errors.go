// SPDX-License-Identifier: MIT
// Package: oopsiroute/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrBadParameter indicates a non-size parameter outside its domain
// (e.g. maxDegree < 1, maxWeight < 1, a malformed grid ID).
var ErrBadParameter = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a core mutation failed while building
// (e.g. a GraphSpec edge naming an undeclared node).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the given method context:
// "<method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// constructErrorf wraps a core mutation failure so that both ErrConstructFailed
// and the underlying core sentinel stay matchable with errors.Is.
func constructErrorf(method string, cause error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w: %w", method, fmt.Sprintf(format, args...), ErrConstructFailed, cause)
}
