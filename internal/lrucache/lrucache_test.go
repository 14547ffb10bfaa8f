package lrucache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLruCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLruCache[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Add("c", 3)
	_, ok = c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	assert.Equal(t, 2, c.Len())

	v, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLruCacheUpdatesExisting(t *testing.T) {
	c := NewLruCache[int, string](1)
	c.Add(1, "one")
	c.Add(1, "uno")
	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "uno", v)
	assert.Equal(t, 1, c.Len())
}

func TestLruCacheMinimumCapacity(t *testing.T) {
	c := NewLruCache[int, int](0)
	c.Add(1, 1)
	c.Add(2, 2)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)
}
