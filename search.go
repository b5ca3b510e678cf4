package cgraph

import (
	"math"
	"time"

	"github.com/hupe1980/cgraph/internal/adjacency"
	"github.com/hupe1980/cgraph/internal/queue"
)

// Path is the result of a single-pair shortest path query.
type Path[K comparable] struct {
	// Distance is the sum of edge weights along Nodes.
	Distance float64

	// Nodes lists the path from source to target, both included.
	Nodes []K
}

// ShortestPaths computes the shortest path distance from source to every
// reachable node (Dijkstra). Unreachable nodes are omitted; an unknown source
// yields an empty map.
//
// Edge weights must be non-negative; this is not checked.
func (g *Graph[K]) ShortestPaths(source K) map[K]float64 {
	start := time.Now()

	s, ok := g.index[source]
	if !ok {
		g.record(QueryShortestPaths, 0, start)
		return map[K]float64{}
	}

	d := newDijkstra(len(g.ids), s, g.out)
	for d.frontier.Len() > 0 {
		d.step()
	}

	result := make(map[K]float64, d.settled)
	for i, dist := range d.dist {
		if !math.IsInf(dist, 1) {
			result[g.ids[i]] = dist
		}
	}

	g.record(QueryShortestPaths, d.settled, start)
	return result
}

// ShortestPath finds a shortest path from source to target using
// bidirectional Dijkstra. It reports false when either endpoint is unknown or
// target is unreachable from source. source == target yields a zero-length
// path without searching.
//
// The backward search follows incoming edges, so results are exact for
// directed graphs as well. Edge weights must be non-negative; this is not
// checked.
func (g *Graph[K]) ShortestPath(source, target K) (Path[K], bool) {
	start := time.Now()

	s, okS := g.index[source]
	t, okT := g.index[target]
	if !okS || !okT {
		g.record(QueryShortestPath, 0, start)
		return Path[K]{}, false
	}
	if s == t {
		g.record(QueryShortestPath, 0, start)
		return Path[K]{Distance: 0, Nodes: []K{g.ids[s]}}, true
	}

	n := len(g.ids)
	fwd := newDijkstra(n, s, g.out)
	bwd := newDijkstra(n, t, g.in)

	best := math.Inf(1)
	meeting := uint32(adjacency.NoNode)

	for fwd.frontier.Len() > 0 || bwd.frontier.Len() > 0 {
		if u, ok := fwd.step(); ok && !math.IsInf(bwd.dist[u], 1) {
			if candidate := fwd.dist[u] + bwd.dist[u]; candidate < best {
				best = candidate
				meeting = u
			}
		}
		if u, ok := bwd.step(); ok && !math.IsInf(fwd.dist[u], 1) {
			if candidate := fwd.dist[u] + bwd.dist[u]; candidate < best {
				best = candidate
				meeting = u
			}
		}

		// No pending entry can improve on best once the two smallest
		// tentative distances already add up to it.
		if meeting != adjacency.NoNode &&
			fwd.frontier.PeekDistance()+bwd.frontier.PeekDistance() >= best {
			break
		}
	}

	settled := fwd.settled + bwd.settled
	if meeting == adjacency.NoNode {
		g.record(QueryShortestPath, settled, start)
		return Path[K]{}, false
	}

	var nodes []K
	for u := meeting; u != adjacency.NoNode; u = fwd.parent[u] {
		nodes = append(nodes, g.ids[u])
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for u := bwd.parent[meeting]; u != adjacency.NoNode; u = bwd.parent[u] {
		nodes = append(nodes, g.ids[u])
	}

	g.record(QueryShortestPath, settled, start)
	return Path[K]{Distance: best, Nodes: nodes}, true
}

// Distance returns the shortest path distance from source to target.
func (g *Graph[K]) Distance(source, target K) (float64, bool) {
	p, ok := g.ShortestPath(source, target)
	if !ok {
		return math.Inf(1), false
	}
	return p.Distance, true
}

// dijkstra is the working state of one Dijkstra expansion over a single
// adjacency table. It is owned by exactly one query call.
type dijkstra struct {
	adj      *adjacency.Table
	dist     []float64
	parent   []uint32
	frontier *queue.PriorityQueue
	settled  int
}

func newDijkstra(n int, origin uint32, adj *adjacency.Table) *dijkstra {
	dist := make([]float64, n)
	parent := make([]uint32, n)
	inf := math.Inf(1)
	for i := range dist {
		dist[i] = inf
		parent[i] = adjacency.NoNode
	}
	dist[origin] = 0

	frontier := queue.NewMin(64)
	frontier.Push(origin, 0)

	return &dijkstra{
		adj:      adj,
		dist:     dist,
		parent:   parent,
		frontier: frontier,
	}
}

// step pops one frontier entry. A stale entry, whose distance has since been
// improved, is discarded and step reports false. Otherwise the node is
// settled, its edges are relaxed, and it is returned.
func (d *dijkstra) step() (uint32, bool) {
	item, ok := d.frontier.Pop()
	if !ok {
		return adjacency.NoNode, false
	}

	u := item.Node
	if item.Distance > d.dist[u] {
		return adjacency.NoNode, false
	}
	d.settled++

	targets, weights := d.adj.Row(u)
	for i, v := range targets {
		nd := item.Distance + weights[i]
		if nd < d.dist[v] {
			d.dist[v] = nd
			d.parent[v] = u
			d.frontier.Push(v, nd)
		}
	}

	return u, true
}
