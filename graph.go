package cgraph

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/cgraph/internal/adjacency"
)

// Graph is a compiled, immutable graph optimized for repeated read-only
// queries. Node identities are mapped onto a dense index space at compile
// time; every query runs on flat index-addressed arrays and translates back
// to identities only when building its result.
//
// A Graph has no mutating methods. Any number of goroutines may query the
// same Graph concurrently without synchronization; each query allocates its
// own working state.
type Graph[K comparable] struct {
	index map[K]uint32
	ids   []K

	// out holds outgoing adjacency. in holds incoming adjacency and is the
	// same table as out for undirected graphs.
	out *adjacency.Table
	in  *adjacency.Table

	edges    int
	directed bool

	logger  *Logger
	metrics MetricsCollector
}

// NodeCount returns the number of nodes.
func (g *Graph[K]) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of edges. An undirected edge counts once.
func (g *Graph[K]) EdgeCount() int { return g.edges }

// Directed reports whether the graph was compiled from a directed source.
func (g *Graph[K]) Directed() bool { return g.directed }

// String implements fmt.Stringer.
func (g *Graph[K]) String() string {
	return fmt.Sprintf("CompiledGraph(nodes=%d, edges=%d)", g.NodeCount(), g.EdgeCount())
}

// Contains reports whether id is a node of the graph.
func (g *Graph[K]) Contains(id K) bool {
	_, ok := g.index[id]
	return ok
}

// Nodes returns an iterator over all node identities in compile order.
func (g *Graph[K]) Nodes() iter.Seq[K] {
	return slices.Values(g.ids)
}

// Neighbors returns an iterator over the outgoing neighbors of id and the
// weights of the connecting edges, in adjacency order. Unknown identities
// yield nothing.
func (g *Graph[K]) Neighbors(id K) iter.Seq2[K, float64] {
	return func(yield func(K, float64) bool) {
		u, ok := g.index[id]
		if !ok {
			return
		}
		targets, weights := g.out.Row(u)
		for i, v := range targets {
			if !yield(g.ids[v], weights[i]) {
				return
			}
		}
	}
}

func (g *Graph[K]) record(kind QueryKind, settled int, start time.Time) {
	duration := time.Since(start)
	g.metrics.RecordQuery(kind, settled, duration)
	g.logger.LogQuery(kind, settled, duration)
}
