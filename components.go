package cgraph

import (
	"time"

	"github.com/hupe1980/cgraph/internal/bitmap"
	"github.com/hupe1980/cgraph/internal/visited"
)

// Components partitions the nodes into connected components. Edge direction
// is ignored, so a directed graph yields its weakly connected components.
//
// Components appear in order of their first node in compile order, and the
// members of each component are listed in compile order. Every node belongs
// to exactly one component; isolated nodes form singletons.
func (g *Graph[K]) Components() [][]K {
	start := time.Now()

	var components [][]K
	g.sweep(func(members []uint32) {
		set := bitmap.NewNodeSet()
		for _, u := range members {
			set.Add(u)
		}

		component := make([]K, 0, set.Cardinality())
		for u := range set.All() {
			component = append(component, g.ids[u])
		}
		components = append(components, component)
	})

	if components == nil {
		components = [][]K{}
	}

	g.record(QueryComponents, len(g.ids), start)
	return components
}

// ComponentCount returns the number of connected components, ignoring edge
// direction.
func (g *Graph[K]) ComponentCount() int {
	count := 0
	g.sweep(func([]uint32) { count++ })
	return count
}

// Connected reports whether a and b lie in the same connected component,
// ignoring edge direction. Unknown identities are never connected.
func (g *Graph[K]) Connected(a, b K) bool {
	u, okA := g.index[a]
	v, okB := g.index[b]
	if !okA || !okB {
		return false
	}
	if u == v {
		return true
	}

	found := false
	seen := visited.New(len(g.ids))
	g.expand(seen, u, nil, func(w uint32) bool {
		found = w == v
		return !found
	})
	return found
}

// sweep visits every node in index order and calls fn once per component
// with the member indices in discovery order. The slice passed to fn is
// reused between calls.
func (g *Graph[K]) sweep(fn func(members []uint32)) {
	seen := visited.New(len(g.ids))
	var members []uint32

	for i := range g.ids {
		root := uint32(i)
		if seen.Visited(root) {
			continue
		}
		members = g.expand(seen, root, members[:0], nil)
		fn(members)
	}
}

// expand runs an undirected breadth-first expansion from root over both the
// outgoing and the incoming tables, appending every newly discovered index to
// fifo. If visit is non-nil it is called for each discovered node and the
// expansion stops when it returns false.
func (g *Graph[K]) expand(seen *visited.Set, root uint32, fifo []uint32, visit func(uint32) bool) []uint32 {
	seen.Visit(root)
	fifo = append(fifo, root)

	for head := len(fifo) - 1; head < len(fifo); head++ {
		u := fifo[head]

		targets, _ := g.out.Row(u)
		for _, v := range targets {
			if seen.TestAndVisit(v) {
				continue
			}
			fifo = append(fifo, v)
			if visit != nil && !visit(v) {
				return fifo
			}
		}

		if !g.directed {
			continue
		}
		sources, _ := g.in.Row(u)
		for _, v := range sources {
			if seen.TestAndVisit(v) {
				continue
			}
			fifo = append(fifo, v)
			if visit != nil && !visit(v) {
				return fifo
			}
		}
	}

	return fifo
}
