// Package testutil provides testing utilities for cgraph.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and generators for random
// graphs expressed as edge lists over the node identities 0..n-1.
//
// # Random Graphs
//
//	rng := testutil.NewRNG(seed)
//	edges := rng.RandomEdges(1000, 4000, 7) // chain with gaps plus random edges
//	pairs := rng.Pairs(1000, 64)            // query pairs
//
// # Grids
//
//	edges := testutil.Grid(32, 32) // 4-neighborhood, unit weights
package testutil
