package queue

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		pq := NewMin(4)
		assert.Equal(t, 0, pq.Len())

		_, ok := pq.Pop()
		assert.False(t, ok)

		_, ok = pq.Top()
		assert.False(t, ok)

		assert.True(t, math.IsInf(pq.PeekDistance(), 1))
	})

	t.Run("PopsInDistanceOrder", func(t *testing.T) {
		pq := NewMin(4)
		pq.Push(1, 3)
		pq.Push(2, 1)
		pq.Push(3, 2)
		pq.Push(4, 0.5)

		top, ok := pq.Top()
		require.True(t, ok)
		assert.Equal(t, uint32(4), top.Node)
		assert.Equal(t, 0.5, pq.PeekDistance())

		var nodes []uint32
		for pq.Len() > 0 {
			item, ok := pq.Pop()
			require.True(t, ok)
			nodes = append(nodes, item.Node)
		}
		assert.Equal(t, []uint32{4, 2, 3, 1}, nodes)
	})

	t.Run("StaleEntriesKept", func(t *testing.T) {
		pq := NewMin(4)
		pq.Push(7, 10)
		pq.Push(7, 4)

		assert.Equal(t, 2, pq.Len())

		first, _ := pq.Pop()
		second, _ := pq.Pop()
		assert.Equal(t, Item{Node: 7, Distance: 4}, first)
		assert.Equal(t, Item{Node: 7, Distance: 10}, second)
	})

	t.Run("Reset", func(t *testing.T) {
		pq := NewMin(0)
		pq.Push(1, 1)
		pq.Push(2, 2)
		pq.Reset()
		assert.Equal(t, 0, pq.Len())

		pq.Push(3, 3)
		item, ok := pq.Pop()
		require.True(t, ok)
		assert.Equal(t, uint32(3), item.Node)
	})
}

func TestPriorityQueue_Random(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	pq := NewMin(16)

	want := make([]float64, 0, 500)
	for i := 0; i < 500; i++ {
		d := r.Float64() * 100
		want = append(want, d)
		pq.Push(uint32(i), d)
	}
	sort.Float64s(want)

	got := make([]float64, 0, len(want))
	for pq.Len() > 0 {
		item, _ := pq.Pop()
		got = append(got, item.Distance)
	}
	assert.Equal(t, want, got)
}
