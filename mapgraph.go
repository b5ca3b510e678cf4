package cgraph

import (
	"iter"
	"slices"
)

type edgeKey[K comparable] struct {
	from, to K
}

type edgeAttr struct {
	weight   float64
	weighted bool
}

// MapGraph is a small mutable graph keyed by node identity. It is the
// straightforward map-of-slices representation Compile is meant to replace
// for query workloads, and it implements Source so it can be compiled.
//
// Nodes and neighbors enumerate in insertion order. Adding an edge that
// already exists updates its weight in place. A MapGraph is not safe for
// concurrent mutation.
type MapGraph[K comparable] struct {
	directed bool
	nodes    []K
	adj      map[K][]K
	edges    map[edgeKey[K]]edgeAttr
	numEdges int
}

// NewMapGraph creates an empty graph.
func NewMapGraph[K comparable](directed bool) *MapGraph[K] {
	return &MapGraph[K]{
		directed: directed,
		adj:      make(map[K][]K),
		edges:    make(map[edgeKey[K]]edgeAttr),
	}
}

// AddNode adds u if it is not present yet.
func (g *MapGraph[K]) AddNode(u K) {
	if _, ok := g.adj[u]; ok {
		return
	}
	g.nodes = append(g.nodes, u)
	g.adj[u] = nil
}

// AddEdge adds the edge u -> v (u - v when undirected) with weight w,
// adding missing endpoints.
func (g *MapGraph[K]) AddEdge(u, v K, w float64) {
	g.addEdge(u, v, edgeAttr{weight: w, weighted: true})
}

// AddUnweightedEdge adds an edge that carries no weight. Compile resolves it
// to the default weight.
func (g *MapGraph[K]) AddUnweightedEdge(u, v K) {
	g.addEdge(u, v, edgeAttr{})
}

func (g *MapGraph[K]) addEdge(u, v K, attr edgeAttr) {
	g.AddNode(u)
	g.AddNode(v)

	key := edgeKey[K]{from: u, to: v}
	if _, exists := g.edges[key]; !exists {
		g.numEdges++
		g.adj[u] = append(g.adj[u], v)
		if !g.directed && u != v {
			g.adj[v] = append(g.adj[v], u)
		}
	}

	g.edges[key] = attr
	if !g.directed {
		g.edges[edgeKey[K]{from: v, to: u}] = attr
	}
}

// HasNode reports whether u is present.
func (g *MapGraph[K]) HasNode(u K) bool {
	_, ok := g.adj[u]
	return ok
}

// HasEdge reports whether the edge u -> v is present.
func (g *MapGraph[K]) HasEdge(u, v K) bool {
	_, ok := g.edges[edgeKey[K]{from: u, to: v}]
	return ok
}

// NodeCount returns the number of nodes.
func (g *MapGraph[K]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. An undirected edge counts once.
func (g *MapGraph[K]) EdgeCount() int { return g.numEdges }

// Nodes implements Source.
func (g *MapGraph[K]) Nodes() iter.Seq[K] {
	return slices.Values(g.nodes)
}

// Neighbors implements Source.
func (g *MapGraph[K]) Neighbors(u K) iter.Seq[K] {
	return slices.Values(g.adj[u])
}

// Weight implements Source.
func (g *MapGraph[K]) Weight(u, v K) (float64, bool) {
	attr, ok := g.edges[edgeKey[K]{from: u, to: v}]
	if !ok || !attr.weighted {
		return 0, false
	}
	return attr.weight, true
}

// Directed implements Source.
func (g *MapGraph[K]) Directed() bool { return g.directed }
