// Package cache provides the small TTL memoization layer shared by the
// category listing and sitemap code paths. It is injected rather than global
// so tests control time and invalidation directly.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// TTL is a concurrency-safe map of values with per-entry expiry. Population
// races are benign: entries are swapped whole, last writer wins.
type TTL struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New creates an empty cache.
func New() *TTL {
	return &TTL{entries: make(map[string]entry), now: time.Now}
}

// NewWithClock creates a cache with an injected clock for tests.
func NewWithClock(now func() time.Time) *TTL {
	return &TTL{entries: make(map[string]entry), now: now}
}

// Get returns the live value for key, if any. Expired entries read as
// missing; they are evicted lazily on the next Set.
func (c *TTL) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for the given lifetime.
func (c *TTL) Set(key string, value any, ttl time.Duration) {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}
	c.mu.Unlock()
}

// Invalidate drops one key.
func (c *TTL) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Reset drops everything.
func (c *TTL) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
