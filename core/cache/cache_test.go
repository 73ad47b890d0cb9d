package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheMemoizes(t *testing.T) {
	calls := 0
	c := New(func(s string) int {
		calls++
		return len(s)
	})
	assert.Equal(t, 5, c.Get("hello"))
	assert.Equal(t, 5, c.Get("hello"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 3, c.Get("abc"))
	assert.Equal(t, 2, c.Misses())
	//
	v, ok := c.Lookup("abc")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = c.Lookup("xyz")
	assert.False(t, ok)
	assert.Equal(t, 2, calls, "Lookup must not compute")
}

func TestCacheReset(t *testing.T) {
	factor := 1
	c := New(func(n int) int { return n * factor })
	assert.Equal(t, 7, c.Get(7))
	factor = 10
	assert.Equal(t, 7, c.Get(7), "stale value is kept until reset")
	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 70, c.Get(7))
}

func TestCacheNeedsComputeFunction(t *testing.T) {
	assert.Panics(t, func() {
		New[string, int](nil)
	})
}
