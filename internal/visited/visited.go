// Package visited provides the per-query visited marks used by traversals.
package visited

// Set tracks visited node indices in a fixed-size bitset.
// A Set belongs to exactly one query call and is not safe for concurrent use.
type Set struct {
	bits  []uint64
	count int
}

// New creates a visited set able to hold node indices in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		bits: make([]uint64, (capacity+63)/64),
	}
}

// Visit marks a node as visited.
func (s *Set) Visit(id uint32) {
	s.TestAndVisit(id)
}

// TestAndVisit marks a node as visited and reports whether it already was.
func (s *Set) TestAndVisit(id uint32) bool {
	wordIdx := id >> 6
	bitMask := uint64(1) << (id & 63)

	if s.bits[wordIdx]&bitMask != 0 {
		return true
	}
	s.bits[wordIdx] |= bitMask
	s.count++
	return false
}

// Visited returns true if the node has been visited.
func (s *Set) Visited(id uint32) bool {
	wordIdx := int(id >> 6)
	if wordIdx >= len(s.bits) {
		return false
	}
	return s.bits[wordIdx]&(uint64(1)<<(id&63)) != 0
}

// Count returns the number of visited nodes.
func (s *Set) Count() int { return s.count }
