/*
Package cache implements a memoizing cache for the results of expensive
computations, most notably text measurements.

Entries are never evicted: there is no time-based or size-based expiry.
The only way to invalidate entries is an explicit call to Reset, which hosts
will do whenever the style context (font, size, …) of a measurement
changes. Typical key sets are small, e.g. a bounded vocabulary of axis labels.

Caches are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cache

import (
	"github.com/emirpasic/gods/maps/hashmap"
)

// Cache memoizes values of type V for keys of type K.
type Cache[K comparable, V any] struct {
	compute func(K) V
	entries *hashmap.Map
	misses  int
}

// New creates a cache which will call compute on a cache miss.
func New[K comparable, V any](compute func(K) V) *Cache[K, V] {
	if compute == nil {
		panic("cache needs a function to compute values")
	}
	return &Cache[K, V]{
		compute: compute,
		entries: hashmap.New(),
	}
}

// Get returns the value for key, computing and storing it if it is not
// yet present.
func (c *Cache[K, V]) Get(key K) V {
	if v, found := c.entries.Get(key); found {
		return v.(V)
	}
	c.misses++
	v := c.compute(key)
	c.entries.Put(key, v)
	return v
}

// Lookup returns the value for key without computing it.
func (c *Cache[K, V]) Lookup(key K) (V, bool) {
	if v, found := c.entries.Get(key); found {
		return v.(V), true
	}
	var zero V
	return zero, false
}

// Reset drops all entries.
func (c *Cache[K, V]) Reset() {
	c.entries.Clear()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.entries.Size()
}

// Misses returns the number of times a value has been computed.
func (c *Cache[K, V]) Misses() int {
	return c.misses
}
