package baseline

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testGraph struct {
	directed bool
	nodes    []string
	adj      map[string][]string
	weights  map[[2]string]float64
}

func newTestGraph(directed bool) *testGraph {
	return &testGraph{
		directed: directed,
		adj:      map[string][]string{},
		weights:  map[[2]string]float64{},
	}
}

func (g *testGraph) node(u string) {
	if _, ok := g.adj[u]; !ok {
		g.nodes = append(g.nodes, u)
		g.adj[u] = nil
	}
}

func (g *testGraph) edge(u, v string, w float64) {
	g.node(u)
	g.node(v)
	g.adj[u] = append(g.adj[u], v)
	if w != 0 {
		g.weights[[2]string{u, v}] = w
	}
	if !g.directed {
		g.adj[v] = append(g.adj[v], u)
		if w != 0 {
			g.weights[[2]string{v, u}] = w
		}
	}
}

func (g *testGraph) Nodes() iter.Seq[string] {
	return slices.Values(g.nodes)
}

func (g *testGraph) Neighbors(u string) iter.Seq[string] {
	return slices.Values(g.adj[u])
}

func (g *testGraph) Directed() bool {
	return g.directed
}

func (g *testGraph) Weight(u, v string) (float64, bool) {
	w, ok := g.weights[[2]string{u, v}]
	return w, ok
}

func TestShortestPaths(t *testing.T) {
	g := newTestGraph(false)
	g.edge("A", "B", 1)
	g.edge("A", "C", 4)
	g.edge("B", "D", 2)
	g.edge("C", "D", 1)

	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 4, "D": 3}, ShortestPaths(g, "A", 1))
	assert.Empty(t, ShortestPaths(g, "Z", 1))

	d, ok := ShortestPathLength(g, "A", "D", 1)
	assert.True(t, ok)
	assert.Equal(t, 3.0, d)
}

func TestShortestPaths_DefaultWeight(t *testing.T) {
	g := newTestGraph(true)
	g.edge("A", "B", 0)
	g.edge("B", "C", 0)
	g.node("D")

	assert.Equal(t, map[string]float64{"A": 0, "B": 2, "C": 4}, ShortestPaths(g, "A", 2))

	_, ok := ShortestPathLength(g, "C", "A", 1)
	assert.False(t, ok)
	_, ok = ShortestPathLength(g, "A", "D", 1)
	assert.False(t, ok)
}

func TestBFS(t *testing.T) {
	g := newTestGraph(false)
	g.edge("0", "1", 0)
	g.edge("0", "2", 0)
	g.edge("1", "3", 0)
	g.edge("2", "4", 0)

	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, BFS(g, "0"))
	assert.Empty(t, BFS(g, "x"))
}

func TestComponents(t *testing.T) {
	g := newTestGraph(true)
	g.node("A")
	g.edge("B", "A", 1)
	g.edge("C", "D", 1)
	g.node("E")

	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}, {"E"}}, Components(g))
}
