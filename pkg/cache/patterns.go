package cache

import (
	"regexp"
)

// DefaultPatternCapacity is used by NewPatterns when capacity is not positive.
const DefaultPatternCapacity = 256

// Patterns memoizes compiled regular expressions by source text.
// Compilation failures are not cached.
type Patterns struct {
	lru *LRUCache[string, *regexp.Regexp]
}

// NewPatterns creates a pattern cache holding up to capacity expressions.
func NewPatterns(capacity int) *Patterns {
	if capacity <= 0 {
		capacity = DefaultPatternCapacity
	}
	return &Patterns{lru: NewLRUCache[string, *regexp.Regexp](capacity)}
}

// Compile returns the cached expression for expr, compiling it on first use.
// *regexp.Regexp is safe for concurrent use, so one instance is shared by all callers.
func (p *Patterns) Compile(expr string) (*regexp.Regexp, error) {
	if re, ok := p.lru.Get(expr); ok {
		return re, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	p.lru.Put(expr, re)
	return re, nil
}

// Len returns the number of cached expressions.
func (p *Patterns) Len() int {
	return p.lru.Len()
}
