package visited

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New(130)

	assert.False(t, s.Visited(1))
	assert.False(t, s.Visited(129))
	assert.Equal(t, 0, s.Count())

	s.Visit(1)
	assert.True(t, s.Visited(1))
	assert.False(t, s.Visited(65))

	s.Visit(129)
	assert.True(t, s.Visited(129))
	assert.Equal(t, 2, s.Count())

	// Visiting twice does not double count.
	s.Visit(1)
	assert.Equal(t, 2, s.Count())
}

func TestSet_TestAndVisit(t *testing.T) {
	s := New(64)

	assert.False(t, s.TestAndVisit(63))
	assert.True(t, s.TestAndVisit(63))
	assert.True(t, s.Visited(63))
	assert.Equal(t, 1, s.Count())
}

func TestSet_OutOfRange(t *testing.T) {
	s := New(0)
	assert.False(t, s.Visited(0))
	assert.False(t, s.Visited(1000))
}
