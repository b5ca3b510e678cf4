package cgraph

import (
	"time"

	"github.com/hupe1980/cgraph/internal/adjacency"
)

// Compile converts src into an immutable Graph in a single O(V+E) pass.
//
// Nodes receive dense indices in src.Nodes() order; repeated identities in
// the enumeration are ignored. Each node's neighbors are stored in
// src.Neighbors order with their resolved weights. For directed sources a
// reverse adjacency table is built as well, so that backward searches and
// weakly connected components follow incoming edges.
//
// Edge weights are expected to be non-negative. Compile does not reject
// negative or NaN weights; it logs a warning and the shortest path results
// of the compiled graph are unspecified.
//
// An empty source yields a valid Graph with no nodes.
func Compile[K comparable](src Source[K], optFns ...Option) (*Graph[K], error) {
	opts := applyOptions(optFns)
	start := time.Now()

	if src == nil {
		opts.metricsCollector.RecordCompile(0, 0, time.Since(start), ErrNilSource)
		opts.logger.LogCompile(0, 0, false, time.Since(start), ErrNilSource)
		return nil, ErrNilSource
	}

	g, invalid, err := compile(src, opts)
	duration := time.Since(start)
	if err != nil {
		opts.metricsCollector.RecordCompile(0, 0, duration, err)
		opts.logger.LogCompile(0, 0, src.Directed(), duration, err)
		return nil, err
	}

	if invalid > 0 {
		opts.logger.LogNegativeWeights(invalid)
	}
	opts.metricsCollector.RecordCompile(g.NodeCount(), g.EdgeCount(), duration, nil)
	opts.logger.LogCompile(g.NodeCount(), g.EdgeCount(), g.directed, duration, nil)

	return g, nil
}

// compile builds the graph and reports how many entries carry a weight that
// is negative or NaN.
func compile[K comparable](src Source[K], opts options) (*Graph[K], int, error) {
	index := make(map[K]uint32)
	var ids []K

	for id := range src.Nodes() {
		if _, dup := index[id]; dup {
			continue
		}
		if uint64(len(ids)) >= adjacency.NoNode {
			return nil, 0, &ErrCompile{Nodes: len(ids), cause: ErrTooManyNodes}
		}
		index[id] = uint32(len(ids))
		ids = append(ids, id)
	}

	b := adjacency.NewBuilder(len(ids), len(ids))
	invalid, selfLoops := 0, 0

	for u, id := range ids {
		for nb := range src.Neighbors(id) {
			v, ok := index[nb]
			if !ok {
				return nil, 0, &ErrCompile{
					Nodes: len(ids),
					cause: &ErrUnknownNeighbor{Node: id, Neighbor: nb},
				}
			}

			w, ok := src.Weight(id, nb)
			if !ok {
				w = opts.defaultWeight
			}
			if !(w >= 0) {
				invalid++
			}
			if v == uint32(u) {
				selfLoops++
			}
			b.Add(v, w)
		}
		b.EndRow()
	}

	out := b.Build()
	directed := src.Directed()

	g := &Graph[K]{
		index:    index,
		ids:      ids,
		out:      out,
		in:       out,
		directed: directed,
		logger:   opts.logger,
		metrics:  opts.metricsCollector,
	}

	if directed {
		g.in = out.Reverse()
		g.edges = out.Entries()
	} else {
		// Every undirected edge is listed from both endpoints, except
		// self-loops which appear once.
		g.edges = (out.Entries() + selfLoops) / 2
	}

	return g, invalid, nil
}
