package testutil

import (
	"math/rand/v2"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	src  *rand.PCG
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	src := rand.NewPCG(seed, seed)
	return &RNG{
		src:  src,
		rand: rand.New(src),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src.Seed(r.seed, r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Weight returns a pseudo-random integral weight in [1, 10].
// Integral weights keep path sums exact.
func (r *RNG) Weight() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.weightLocked()
}

func (r *RNG) weightLocked() float64 {
	return float64(r.rand.IntN(10) + 1)
}

// Edge is a weighted edge between two integer node identities.
type Edge struct {
	From, To int
	Weight   float64
}

// RandomEdges returns a chain 0-1-...-(n-1) with every gap-th link left out,
// followed by m random edges between distinct nodes. Weights are integral
// in [1, 10]. Leaving links out of the chain splits the graph into several
// components unless the random edges join them again; gap <= 0 keeps the
// full chain.
func (r *RNG) RandomEdges(n, m, gap int) []Edge {
	r.mu.Lock()
	defer r.mu.Unlock()

	edges := make([]Edge, 0, n+m)
	for i := 0; i+1 < n; i++ {
		if gap > 0 && i%gap == gap-1 {
			continue
		}
		edges = append(edges, Edge{From: i, To: i + 1, Weight: r.weightLocked()})
	}
	if n < 2 {
		return edges
	}
	for k := 0; k < m; k++ {
		u, v := r.rand.IntN(n), r.rand.IntN(n)
		if u == v {
			continue
		}
		edges = append(edges, Edge{From: u, To: v, Weight: r.weightLocked()})
	}
	return edges
}

// Pairs returns count random (source, target) pairs over [0, n).
func (r *RNG) Pairs(n, count int) [][2]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	pairs := make([][2]int, count)
	for i := range pairs {
		pairs[i] = [2]int{r.rand.IntN(n), r.rand.IntN(n)}
	}
	return pairs
}

// Grid returns the edges of a rows x cols grid with unit weights. Node
// (row, col) has identity row*cols + col and is linked to its right and lower
// neighbor.
func Grid(rows, cols int) []Edge {
	var edges []Edge
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			u := row*cols + col
			if col+1 < cols {
				edges = append(edges, Edge{From: u, To: u + 1, Weight: 1})
			}
			if row+1 < rows {
				edges = append(edges, Edge{From: u, To: u + cols, Weight: 1})
			}
		}
	}
	return edges
}
