package cgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cgraph/testutil"
)

// chainGraph is A-B(1), B-C(2), C-D(3).
func chainGraph() *MapGraph[string] {
	src := NewMapGraph[string](false)
	src.AddEdge("A", "B", 1)
	src.AddEdge("B", "C", 2)
	src.AddEdge("C", "D", 3)
	return src
}

// diamondGraph is A-B(1), A-C(4), B-D(2), C-D(1).
func diamondGraph() *MapGraph[string] {
	src := NewMapGraph[string](false)
	src.AddEdge("A", "B", 1)
	src.AddEdge("A", "C", 4)
	src.AddEdge("B", "D", 2)
	src.AddEdge("C", "D", 1)
	return src
}

// randomGraph builds a sparse graph with n nodes from testutil.RandomEdges.
// Every seventh chain link is left out so the graph has several components.
func randomGraph(r *testutil.RNG, n, m int, directed bool) *MapGraph[int] {
	src := NewMapGraph[int](directed)
	for i := 0; i < n; i++ {
		src.AddNode(i)
	}
	for _, e := range r.RandomEdges(n, m, 7) {
		src.AddEdge(e.From, e.To, e.Weight)
	}
	return src
}

func mustCompile[K comparable](t testing.TB, src Source[K], opts ...Option) *Graph[K] {
	t.Helper()
	g, err := Compile(src, opts...)
	require.NoError(t, err)
	return g
}

// requireValidPath checks that p starts at source, ends at target, only uses
// edges of src and has a weight sum equal to p.Distance.
func requireValidPath[K comparable](t *testing.T, src *MapGraph[K], source, target K, p Path[K]) {
	t.Helper()
	require.NotEmpty(t, p.Nodes)
	require.Equal(t, source, p.Nodes[0])
	require.Equal(t, target, p.Nodes[len(p.Nodes)-1])

	sum := 0.0
	for i := 0; i+1 < len(p.Nodes); i++ {
		u, v := p.Nodes[i], p.Nodes[i+1]
		require.True(t, src.HasEdge(u, v), "edge %v -> %v not in graph", u, v)
		w, ok := src.Weight(u, v)
		if !ok {
			w = DefaultWeight
		}
		sum += w
	}
	require.InDelta(t, p.Distance, sum, 1e-9)
}
