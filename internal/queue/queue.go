// Package queue provides the value-based binary heap used as the frontier of
// Dijkstra-family searches.
package queue

import "math"

// Item is a frontier entry: a node index tagged with the tentative distance it
// was pushed with. Entries are never updated in place; a better distance for
// the same node is pushed as a new Item and the old one becomes stale.
type Item struct {
	Node     uint32
	Distance float64
}

// PriorityQueue is a min-heap of Items keyed by Distance.
// Value-based storage, no container/heap boxing.
type PriorityQueue struct {
	items []Item
}

// NewMin initializes an empty min-heap with the given capacity hint.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]Item, 0, capacity),
	}
}

// Len returns the number of entries in the queue, stale ones included.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Push inserts an entry while maintaining the heap invariant.
func (pq *PriorityQueue) Push(node uint32, distance float64) {
	pq.items = append(pq.items, Item{Node: node, Distance: distance})
	pq.siftUp(len(pq.items) - 1)
}

// Top returns the entry with the smallest distance without removing it.
func (pq *PriorityQueue) Top() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}
	return pq.items[0], true
}

// PeekDistance returns the smallest pending distance, or +Inf when empty.
func (pq *PriorityQueue) PeekDistance() float64 {
	if len(pq.items) == 0 {
		return math.Inf(1)
	}
	return pq.items[0].Distance
}

// Pop removes and returns the entry with the smallest distance.
func (pq *PriorityQueue) Pop() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Reset clears the queue for reuse, keeping its backing array.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}

func (pq *PriorityQueue) less(i, j int) bool {
	return pq.items[i].Distance < pq.items[j].Distance
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
