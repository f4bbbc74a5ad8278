package wiring

import "sync"

// Cache memoizes permutations per Spec so tight redraw loops never rebuild
// the same table frame after frame. Safe for concurrent use; a miss builds
// outside the lock, and a racing duplicate build is harmless because Build
// is deterministic — the first stored instance wins.
type Cache struct {
	mu    sync.RWMutex
	perms map[Spec]*Permutation
}

// NewCache returns an empty permutation cache.
func NewCache() *Cache {
	return &Cache{perms: make(map[Spec]*Permutation)}
}

// Get returns the memoized permutation for spec, building and storing it on
// first use. Build errors are returned as-is and nothing is cached for the
// failing spec.
//
// Complexity: O(1) on a hit, O(W·H) on the first miss.
func (c *Cache) Get(spec Spec) (*Permutation, error) {
	c.mu.RLock()
	p, ok := c.perms[spec]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := Build(spec)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Keep the first stored instance so concurrent callers share one table.
	if prior, ok := c.perms[spec]; ok {
		p = prior
	} else {
		c.perms[spec] = p
	}
	c.mu.Unlock()

	return p, nil
}

// Len reports the number of memoized permutations.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.perms)
}

// Purge drops every memoized permutation, for example after a batch of
// one-off export targets.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.perms = make(map[Spec]*Permutation)
	c.mu.Unlock()
}
