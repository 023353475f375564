package dictionary

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes another Lookup by language and term. Found entries and
// ErrNotFound are remembered; failures are not, so a later call retries.
// Concurrent lookups of the same key share one call to the inner Lookup.
// When the cache is full the oldest key is evicted.
type Cache struct {
	inner Lookup
	size  int
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]cached
	order   []string
}

type cached struct {
	entry *Entry
	err   error
}

var _ Lookup = (*Cache)(nil)

// NewCache wraps inner with a cache of at most size keys. A size of zero
// or less disables caching but still collapses concurrent lookups.
func NewCache(inner Lookup, size int) *Cache {
	if inner == nil {
		panic("inner lookup cannot be nil")
	}
	return &Cache{
		inner:   inner,
		size:    size,
		entries: make(map[string]cached),
	}
}

// Lookup implements Lookup.
func (c *Cache) Lookup(ctx context.Context, term, lang string) (*Entry, error) {
	q, err := NewQuery(term, lang)
	if err != nil {
		return nil, err
	}
	key := q.Key()

	if hit, ok := c.get(key); ok {
		return hit.entry.Clone(), hit.err
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		entry, err := c.inner.Lookup(ctx, q.Term, q.Lang)
		if err == nil || errors.Is(err, ErrNotFound) {
			c.put(key, cached{entry: entry, err: err})
		}
		return entry, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*Entry).Clone(), nil
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) get(key string) (cached, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hit, ok := c.entries[key]
	return hit, ok
}

func (c *Cache) put(key string, value cached) {
	if c.size <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		if len(c.order) >= c.size {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = value
}
