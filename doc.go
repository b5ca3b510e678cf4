// Package cgraph compiles general-purpose graphs into a flat, index-addressed
// layout for fast repeated read-only queries.
//
// Generic graph representations keep adjacency in maps keyed by node
// identity, paying for hashing and pointer chasing on every traversal step.
// When the same graph is queried many times, a one-time O(V+E) compilation
// into dense integer indices and a compressed adjacency table amortizes that
// cost and keeps each query cache-friendly.
//
// # Quick Start
//
//	src := cgraph.NewMapGraph[string](false)
//	src.AddEdge("A", "B", 1)
//	src.AddEdge("B", "C", 2)
//	src.AddEdge("C", "D", 3)
//
//	g, _ := cgraph.Compile[string](src)
//
//	g.ShortestPaths("A")              // map[A:0 B:1 C:3 D:6]
//	p, ok := g.ShortestPath("A", "D") // {6 [A B C D]} true
//	g.BFS("A")                        // [A B C D]
//	g.Components()                    // [[A B C D]]
//
// Any type implementing Source can be compiled; MapGraph is a simple
// in-memory implementation.
//
// # Queries
//
//   - ShortestPaths: single-source Dijkstra over the whole reachable set.
//   - ShortestPath: single-pair bidirectional Dijkstra with early exit.
//   - BFS, DFS: traversal order from a source.
//   - Components, ComponentCount, Connected: connectivity, ignoring direction.
//
// Queries take and return node identities; the internal index space is never
// exposed. Unknown identities and unreachable targets are not errors: every
// query has an empty or "not found" result for them.
//
// # Concurrency
//
// A compiled Graph is immutable. Queries allocate their own working state, so
// any number of goroutines may query one Graph without synchronization.
//
// # Preconditions
//
// Shortest path queries assume non-negative edge weights. Compile logs a
// warning for negative or NaN weights but does not reject them; results on
// such graphs are unspecified.
package cgraph
