// Package routing serves shortest-path and reachability queries over a shared
// graph.
//
// Service owns a *core.Graph behind a sync.RWMutex: queries take the read
// lock and run the dijkstra, astar or bfs packages directly on the graph;
// mutations take the write lock. Every query is counted and timed in
// Prometheus collectors registered on the Registerer given to New.
//
//	svc, _ := routing.New(builder.NewDemo(), routing.WithLogger(log))
//	r, err := svc.Route(ctx, "A", "E") // r.Path == [A D E], r.Distance == 3.4
//	switch {
//	case errors.Is(err, routing.ErrUnknownNode): // 400
//	case errors.Is(err, routing.ErrNoPath):      // 404
//	}
package routing
