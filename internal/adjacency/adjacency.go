// Package adjacency implements the flat, index-addressed adjacency table that
// compiled graph queries traverse.
//
// The table uses a compressed sparse row layout:
//
//	offsets: [0, 2, 3, 3]          len = nodes + 1
//	targets: [1, 2, 2]             row u is targets[offsets[u]:offsets[u+1]]
//	weights: [1.5, 4, 2]           parallel to targets
//
// A Table is immutable once built and safe for concurrent readers.
package adjacency

import "math"

// NoNode marks the absence of a node index (e.g. an unset parent link).
const NoNode = math.MaxUint32

// Table is an immutable CSR adjacency table.
type Table struct {
	offsets []int
	targets []uint32
	weights []float64
}

// Nodes returns the number of rows in the table.
func (t *Table) Nodes() int {
	return len(t.offsets) - 1
}

// Entries returns the total number of adjacency entries.
func (t *Table) Entries() int {
	return len(t.targets)
}

// Row returns the neighbors of u and their weights, in insertion order.
// The returned slices alias the table and must not be modified.
func (t *Table) Row(u uint32) ([]uint32, []float64) {
	lo, hi := t.offsets[u], t.offsets[u+1]
	return t.targets[lo:hi:hi], t.weights[lo:hi:hi]
}

// Degree returns the number of entries in row u.
func (t *Table) Degree(u uint32) int {
	return t.offsets[u+1] - t.offsets[u]
}

// Reverse builds the transposed table: every entry (u -> v, w) becomes
// (v -> u, w). Within a row, entries are ordered by source index, then by
// their position in the source row.
func (t *Table) Reverse() *Table {
	n := t.Nodes()
	offsets := make([]int, n+1)
	for _, v := range t.targets {
		offsets[v+1]++
	}
	for i := 1; i <= n; i++ {
		offsets[i] += offsets[i-1]
	}

	targets := make([]uint32, len(t.targets))
	weights := make([]float64, len(t.weights))
	cursor := make([]int, n)
	copy(cursor, offsets[:n])

	for u := 0; u < n; u++ {
		for i := t.offsets[u]; i < t.offsets[u+1]; i++ {
			v := t.targets[i]
			pos := cursor[v]
			targets[pos] = uint32(u)
			weights[pos] = t.weights[i]
			cursor[v]++
		}
	}

	return &Table{
		offsets: offsets,
		targets: targets,
		weights: weights,
	}
}

// Builder assembles a Table row by row, in node index order.
type Builder struct {
	nodes   int
	offsets []int
	targets []uint32
	weights []float64
}

// NewBuilder creates a builder for a table with the given number of rows.
// entriesHint pre-sizes the entry arrays.
func NewBuilder(nodes, entriesHint int) *Builder {
	offsets := make([]int, 1, nodes+1)
	return &Builder{
		nodes:   nodes,
		offsets: offsets,
		targets: make([]uint32, 0, entriesHint),
		weights: make([]float64, 0, entriesHint),
	}
}

// Add appends an entry to the current row.
func (b *Builder) Add(target uint32, weight float64) {
	b.targets = append(b.targets, target)
	b.weights = append(b.weights, weight)
}

// EndRow closes the current row and starts the next one.
func (b *Builder) EndRow() {
	b.offsets = append(b.offsets, len(b.targets))
}

// Build closes any rows not yet ended as empty rows and returns the table.
// The builder must not be used afterwards.
func (b *Builder) Build() *Table {
	for len(b.offsets) < b.nodes+1 {
		b.offsets = append(b.offsets, len(b.targets))
	}
	t := &Table{
		offsets: b.offsets,
		targets: b.targets,
		weights: b.weights,
	}
	b.offsets, b.targets, b.weights = nil, nil, nil
	return t
}
