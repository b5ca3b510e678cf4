// Package main is the entry point for the cgraph CLI.
//
// Usage:
//
//	cgraph -f graph.yaml <command> [args]
//
// Commands:
//
//	info        - Node, edge and component counts
//	sssp        - Distances from one node to every reachable node
//	path        - Shortest path between two nodes
//	bfs, dfs    - Traversal order from one node
//	components  - Connected components
//	convert     - Rewrite the document, optionally compressed
//	bench       - Compiled queries against the uncompiled baseline
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/cgraph/cmd/cgraph/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
