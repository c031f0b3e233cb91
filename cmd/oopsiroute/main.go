// Command oopsiroute serves and benchmarks shortest-path queries over a
// weighted undirected graph.
//
//	oopsiroute serve --config oopsiroute.yaml
//	oopsiroute route A E
//	oopsiroute bfs A
//	oopsiroute bench --output results.csv
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
