package vocab

import (
	"context"
	"sync"
)

// Loader fetches an entry from the backing store. A nil entry with a nil
// error means the entry does not exist.
type Loader func(ctx context.Context, id string) (*Entry, error)

// Cache is a read-through cache over the entry store. Entries are immutable
// apart from enrichment, so callers invalidate on write instead of the cache
// tracking expiry.
type Cache struct {
	load Loader

	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewCache returns a cache backed by the given loader.
func NewCache(load Loader) *Cache {
	return &Cache{
		load:    load,
		entries: make(map[string]*Entry),
	}
}

// Get returns the entry with the given ID, loading it on a miss. Misses for
// nonexistent entries are not cached.
func (c *Cache) Get(ctx context.Context, id string) (*Entry, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()
	if ok {
		return e, nil
	}

	e, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}

	c.mu.Lock()
	c.entries[id] = e
	c.mu.Unlock()
	return e, nil
}

// Invalidate drops a single entry so the next Get reloads it.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// InvalidateAll drops every cached entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*Entry)
	c.mu.Unlock()
}
