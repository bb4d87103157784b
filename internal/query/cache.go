// Package query is the cache-aware fetch layer between the app services
// and the upstream client. Reads are by key, writes replace by key; entries
// expire by TTL and concurrent loads for the same key are deduplicated.
package query

import (
	"context"
	"sync"
	"time"
)

// Loader produces a fresh value for a cache key
type Loader func(ctx context.Context) (any, error)

type entry struct {
	value   any
	expires time.Time
}

type inflight struct {
	done  chan struct{}
	value any
	err   error
}

// Cache is a keyed TTL cache with in-flight deduplication
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	inflight map[string]*inflight
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		entries:  make(map[string]entry),
		inflight: make(map[string]*inflight),
	}
}

// Fetch returns the cached value for key, or runs loader and caches the
// result for ttl. A second caller arriving while a load for the same key is
// in flight waits for that load instead of starting its own.
func (c *Cache) Fetch(ctx context.Context, key string, ttl time.Duration, loader Loader) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && time.Now().Before(e.expires) {
		c.mu.Unlock()
		return e.value, nil
	}
	if fl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-fl.done:
			return fl.value, fl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	fl := &inflight{done: make(chan struct{})}
	c.inflight[key] = fl
	c.mu.Unlock()

	value, err := loader(ctx)

	c.mu.Lock()
	delete(c.inflight, key)
	if err == nil {
		c.entries[key] = entry{value: value, expires: time.Now().Add(ttl)}
	}
	c.mu.Unlock()

	fl.value = value
	fl.err = err
	close(fl.done)

	return value, err
}

// Peek returns the cached value without loading; ok is false on a miss or
// an expired entry
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

// Put replaces the value for key unconditionally
func (c *Cache) Put(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: time.Now().Add(ttl)}
}

// Invalidate drops the entry for key
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Sweep drops all expired entries and reports how many were removed
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
