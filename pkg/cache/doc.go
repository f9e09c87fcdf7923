// Package cache provides a generic, thread-safe LRU cache and a compiled
// regular expression cache built on top of it.
//
// The validator compiles every regexp spec once, at rule construction time.
// Rule sets are often rebuilt from the same configuration (per tenant, per
// request schema), so Patterns keeps the compiled programs around and hands
// out the same *regexp.Regexp for identical source text:
//
//	patterns := cache.NewPatterns(256)
//	re, err := patterns.Compile(`^\d{4}$`)
//
// LRUCache can be used directly for anything else:
//
//	c := cache.NewLRUCache[string, int](100)
//	c.Put("a", 1)
//	v, ok := c.Get("a")
//
// When the cache is full, the least recently used entry (by Get or Put) is
// evicted. All operations are O(1) and safe for concurrent use.
package cache
