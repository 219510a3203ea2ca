// Package cache provides the owning map behind ggres's primitive caches.
//
// Cache[K, V] is unbounded: entries are never evicted for capacity. It
// records insertion order so that teardown releases resources in the order
// they were created, and it only hands values back through DeleteFunc and
// Drain, which makes those methods the sole release paths.
//
//	c := cache.New[key.Key, render.Plot]()
//	plot, created, err := c.GetOrCreate(k, func() (render.Plot, error) {
//	    return backend.NewPlot(n, dtype, kind, ptype, marker)
//	})
//
// # Thread Safety
//
// Cache is not safe for concurrent use. The manager that owns it holds a
// lock around every call.
package cache
