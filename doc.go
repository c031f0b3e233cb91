// Package oopsiroute is a small routing engine over an in-memory weighted
// undirected graph: breadth-first reachability, Dijkstra and A* shortest
// paths, served over HTTP and benchmarked from the command line.
//
// Layout:
//
//	core/       Graph: named nodes, symmetric weighted edges, insertion-ordered iteration
//	bfs/        breadth-first traversal with depth, parents and hooks
//	dijkstra/   single-source shortest paths, early exit on target, ReconstructPath
//	astar/      goal-directed search with pluggable heuristics (Euclidean, Haversine)
//	builder/    demo network, random sparse benchmark graphs, YAML graph specs
//	routing/    concurrency-safe Service with Prometheus metrics
//	internal/   config (YAML), logging (zap), httpapi (gin), bench (CSV)
//	cmd/oopsiroute  serve, route, bfs and bench commands
//
// Quick start:
//
//	g := builder.NewDemo()
//	res, _ := dijkstra.Dijkstra(g, "A", dijkstra.WithTarget("E"))
//	fmt.Println(res.PathTo("E"), res.DistanceTo("E")) // [A D E] 3.4
package oopsiroute
