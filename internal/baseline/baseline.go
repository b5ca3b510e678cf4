// Package baseline implements graph queries directly on an identity-keyed
// graph, hashing node identities on every step. It is the uncompiled
// reference that compiled queries are checked and benchmarked against.
package baseline

import (
	"container/heap"
	"iter"
	"math"
)

// Graph is the identity-keyed graph the baseline walks.
type Graph[K comparable] interface {
	Nodes() iter.Seq[K]
	Neighbors(u K) iter.Seq[K]
	Weight(u, v K) (float64, bool)
	Directed() bool
}

type entry[K comparable] struct {
	node K
	dist float64
}

type minHeap[K comparable] []entry[K]

func (h minHeap[K]) Len() int           { return len(h) }
func (h minHeap[K]) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h minHeap[K]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap[K]) Push(x any)        { *h = append(*h, x.(entry[K])) }
func (h *minHeap[K]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func hasNode[K comparable](g Graph[K], u K) bool {
	if h, ok := g.(interface{ HasNode(K) bool }); ok {
		return h.HasNode(u)
	}
	for n := range g.Nodes() {
		if n == u {
			return true
		}
	}
	return false
}

func weight[K comparable](g Graph[K], u, v K, defaultWeight float64) float64 {
	if w, ok := g.Weight(u, v); ok {
		return w
	}
	return defaultWeight
}

// ShortestPaths runs Dijkstra from source with map-based distances.
func ShortestPaths[K comparable](g Graph[K], source K, defaultWeight float64) map[K]float64 {
	dist := map[K]float64{}
	if !hasNode(g, source) {
		return dist
	}

	done := map[K]bool{}
	dist[source] = 0
	h := &minHeap[K]{{node: source, dist: 0}}

	for h.Len() > 0 {
		e := heap.Pop(h).(entry[K])
		if done[e.node] {
			continue
		}
		done[e.node] = true

		for v := range g.Neighbors(e.node) {
			nd := e.dist + weight(g, e.node, v, defaultWeight)
			if old, ok := dist[v]; !ok || nd < old {
				dist[v] = nd
				heap.Push(h, entry[K]{node: v, dist: nd})
			}
		}
	}
	return dist
}

// ShortestPathLength runs Dijkstra from source and stops at target.
func ShortestPathLength[K comparable](g Graph[K], source, target K, defaultWeight float64) (float64, bool) {
	if !hasNode(g, source) || !hasNode(g, target) {
		return math.Inf(1), false
	}

	dist := map[K]float64{source: 0}
	done := map[K]bool{}
	h := &minHeap[K]{{node: source, dist: 0}}

	for h.Len() > 0 {
		e := heap.Pop(h).(entry[K])
		if done[e.node] {
			continue
		}
		if e.node == target {
			return e.dist, true
		}
		done[e.node] = true

		for v := range g.Neighbors(e.node) {
			nd := e.dist + weight(g, e.node, v, defaultWeight)
			if old, ok := dist[v]; !ok || nd < old {
				dist[v] = nd
				heap.Push(h, entry[K]{node: v, dist: nd})
			}
		}
	}
	return math.Inf(1), false
}

// BFS returns the breadth-first visitation order from source.
func BFS[K comparable](g Graph[K], source K) []K {
	if !hasNode(g, source) {
		return []K{}
	}

	seen := map[K]bool{source: true}
	order := []K{source}
	for head := 0; head < len(order); head++ {
		for v := range g.Neighbors(order[head]) {
			if !seen[v] {
				seen[v] = true
				order = append(order, v)
			}
		}
	}
	return order
}

// Components returns the connected components ignoring edge direction,
// computed with a map-based union-find. Components are ordered by their first
// node in enumeration order; members keep enumeration order.
func Components[K comparable](g Graph[K]) [][]K {
	parent := map[K]K{}
	var find func(K) K
	find = func(u K) K {
		p := parent[u]
		if p == u {
			return u
		}
		root := find(p)
		parent[u] = root
		return root
	}

	var nodes []K
	for u := range g.Nodes() {
		if _, ok := parent[u]; ok {
			continue
		}
		parent[u] = u
		nodes = append(nodes, u)
	}
	for _, u := range nodes {
		for v := range g.Neighbors(u) {
			ru, rv := find(u), find(v)
			if ru != rv {
				parent[rv] = ru
			}
		}
	}

	index := map[K]int{}
	var components [][]K
	for _, u := range nodes {
		root := find(u)
		i, ok := index[root]
		if !ok {
			i = len(components)
			index[root] = i
			components = append(components, nil)
		}
		components[i] = append(components[i], u)
	}
	return components
}
