// Package builder provides deterministic "functional-options"-style graph
// constructors for demos, tests and benchmarks.
//
// The package offers:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new core.Graph, resolved config, constructors in order.
//     – Constructor: func(*core.Graph, builderConfig) error.
//   - Topologies:
//     – Demo:          the five-node A..E network (NewDemo for a ready graph).
//     – RandomSparse:  the benchmark workload (needs WithSeed or WithRand).
//     – Path, Grid:    unit-weight chain and lattice.
//     – FromSpec:      declarative GraphSpec (YAML/JSON tags), used by config.
//   - Node-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, PrefixIDFn.
//   - Layouts: DemoCoordinates, GridCoordinates, GridPoint for A* heuristics.
//
// Guarantees:
//
//   - Same inputs, options and seed produce identical graphs, including
//     node and neighbor insertion order.
//   - Invalid parameters fail fast with ErrTooFewNodes, ErrBadParameter or
//     ErrNeedRandSource; core failures are wrapped with ErrConstructFailed
//     and keep the core sentinel matchable.
package builder
