// Package cache wraps ristretto for the site's rendered pages and images.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a named, cost-bounded cache with a default TTL.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// Stats is a point-in-time view of the cache counters.
type Stats struct {
	Name    string  `json:"name"`
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	HitRate float64 `json:"hit_rate"`
	Items   int64   `json:"items"`
	CostKB  float64 `json:"cost_kb"`
}

// New creates a cache whose entries cost costFunc(value) and live for ttl.
func New[T any](name string, costFunc func(T) int64, ttl time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // the site holds a handful of pages
		MaxCost:     1 << 24, // 16MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}
	return &Cache[T]{impl: impl, name: name, ttl: ttl}, nil
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache's TTL. The cost comes from the cost function.
func (c *Cache[T]) Set(key string, value T) bool {
	return c.impl.SetWithTTL(key, value, 0, c.ttl)
}

// GetOrLoad returns the cached value for key, calling load and caching its
// result on a miss. Load errors are returned and nothing is cached.
func (c *Cache[T]) GetOrLoad(key string, load func() (T, error)) (T, error) {
	if v, ok := c.impl.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Clear removes all items from the cache.
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's goroutines.
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns the cache counters.
func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics
	s := Stats{
		Name:   c.name,
		Hits:   m.Hits(),
		Misses: m.Misses(),
		Items:  int64(m.KeysAdded() - m.KeysEvicted()),
		CostKB: float64(m.CostAdded()-m.CostEvicted()) / 1024,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}
