package cgraph

import "iter"

// Source is the read-only view of a graph that Compile consumes.
//
// Compile walks a Source exactly once and does not retain it, so the source
// may be mutated or discarded as soon as Compile returns.
type Source[K comparable] interface {
	// Nodes enumerates every node identity. The enumeration order fixes the
	// internal index order and the order of Graph.Nodes and Graph.Components.
	Nodes() iter.Seq[K]

	// Neighbors enumerates the nodes adjacent to u. For directed graphs these
	// are the heads of u's outgoing edges. The order is preserved in the
	// compiled adjacency table and drives BFS/DFS visitation order.
	Neighbors(u K) iter.Seq[K]

	// Weight returns the weight of the edge u -> v. ok is false when the edge
	// carries no weight, in which case the default weight applies.
	Weight(u, v K) (w float64, ok bool)

	// Directed reports whether edges are directed.
	Directed() bool
}
