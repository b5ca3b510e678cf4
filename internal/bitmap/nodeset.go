package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// NodeSet is a set of node indices backed by a 32-bit Roaring bitmap.
// Iteration is always in ascending index order.
type NodeSet struct {
	rb *roaring.Bitmap
}

// NewNodeSet creates a new empty node set.
func NewNodeSet() *NodeSet {
	return &NodeSet{
		rb: roaring.New(),
	}
}

// Add adds a node index to the set.
func (s *NodeSet) Add(id uint32) {
	s.rb.Add(id)
}

// CheckedAdd adds a node index and reports whether it was newly added.
func (s *NodeSet) CheckedAdd(id uint32) bool {
	return s.rb.CheckedAdd(id)
}

// Contains checks if a node index is in the set.
func (s *NodeSet) Contains(id uint32) bool {
	return s.rb.Contains(id)
}

// Cardinality returns the number of node indices in the set.
func (s *NodeSet) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set is empty.
func (s *NodeSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Minimum returns the smallest index in the set. The set must not be empty.
func (s *NodeSet) Minimum() uint32 {
	return s.rb.Minimum()
}

// All returns an iterator over the set in ascending order.
func (s *NodeSet) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Or merges other into s.
func (s *NodeSet) Or(other *NodeSet) {
	s.rb.Or(other.rb)
}

// Intersects reports whether s and other share at least one index.
func (s *NodeSet) Intersects(other *NodeSet) bool {
	return s.rb.Intersects(other.rb)
}
