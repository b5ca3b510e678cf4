package cgraph

import (
	"time"

	"github.com/hupe1980/cgraph/internal/visited"
)

// BFS returns the nodes reachable from source in breadth-first order,
// source first. Neighbors are expanded in adjacency order. An unknown source
// yields an empty slice.
func (g *Graph[K]) BFS(source K) []K {
	start := time.Now()

	s, ok := g.index[source]
	if !ok {
		g.record(QueryBFS, 0, start)
		return []K{}
	}

	seen := visited.New(len(g.ids))
	seen.Visit(s)

	fifo := []uint32{s}
	for head := 0; head < len(fifo); head++ {
		targets, _ := g.out.Row(fifo[head])
		for _, v := range targets {
			if !seen.TestAndVisit(v) {
				fifo = append(fifo, v)
			}
		}
	}

	order := make([]K, len(fifo))
	for i, u := range fifo {
		order[i] = g.ids[u]
	}

	g.record(QueryBFS, len(order), start)
	return order
}

// DFS returns the nodes reachable from source in depth-first preorder,
// source first. The first neighbor in adjacency order is explored first. An
// unknown source yields an empty slice.
func (g *Graph[K]) DFS(source K) []K {
	start := time.Now()

	s, ok := g.index[source]
	if !ok {
		g.record(QueryDFS, 0, start)
		return []K{}
	}

	seen := visited.New(len(g.ids))
	order := []K{}

	// A node may sit on the stack several times before its first visit;
	// later copies are skipped when popped.
	stack := []uint32{s}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen.TestAndVisit(u) {
			continue
		}
		order = append(order, g.ids[u])

		targets, _ := g.out.Row(u)
		for i := len(targets) - 1; i >= 0; i-- {
			if v := targets[i]; !seen.Visited(v) {
				stack = append(stack, v)
			}
		}
	}

	g.record(QueryDFS, len(order), start)
	return order
}
