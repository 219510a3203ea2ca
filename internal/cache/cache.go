package cache

// Cache is an unbounded owning map that remembers insertion order.
// Values stay in the cache until they are removed with DeleteFunc or Drain;
// those two methods are the only paths that hand a value back to the caller
// for release, so every value is released at most once.
//
// Cache is not safe for concurrent use. The owner serializes access.
type Cache[K comparable, V any] struct {
	entries map[K]V
	order   []K

	hits   uint64
	misses uint64
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

// GetOrCreate returns the cached value or creates it.
// When create fails nothing is stored and the error is returned unchanged.
// The boolean result reports whether a new value was stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, bool, error) {
	if v, ok := c.entries[key]; ok {
		c.hits++
		return v, false, nil
	}
	c.misses++

	v, err := create()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.entries[key] = v
	c.order = append(c.order, key)
	return v, true, nil
}

// DeleteFunc removes every entry for which del returns true and passes it
// to release, in insertion order. It returns the number of removed entries.
func (c *Cache[K, V]) DeleteFunc(del func(K, V) bool, release func(K, V)) int {
	kept := c.order[:0]
	removed := 0
	for _, k := range c.order {
		v := c.entries[k]
		if !del(k, v) {
			kept = append(kept, k)
			continue
		}
		delete(c.entries, k)
		removed++
		if release != nil {
			release(k, v)
		}
	}
	clear(c.order[len(kept):])
	c.order = kept
	return removed
}

// Drain empties the cache, passing every entry to release in insertion order.
func (c *Cache[K, V]) Drain(release func(K, V)) {
	order := c.order
	entries := c.entries
	c.order = nil
	c.entries = make(map[K]V)
	if release == nil {
		return
	}
	for _, k := range order {
		release(k, entries[k])
	}
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	s := Stats{
		Len:    len(c.entries),
		Hits:   c.hits,
		Misses: c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
}
