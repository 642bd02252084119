// Package reqcache memoizes reads for the duration of a single HTTP request.
// A fresh cache is attached to each request's context by middleware and
// discarded with it, so nothing ever leaks across requests.
package reqcache

import (
	"context"
	"sync"
)

type contextKey struct{}

// Cache is a small per-request memo map. Safe for concurrent use because a
// handler may fan reads out across goroutines.
type Cache struct {
	mu     sync.Mutex
	values map[string]any
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{values: make(map[string]any)}
}

// NewContext returns ctx carrying a fresh cache.
func NewContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, New())
}

// FromContext returns the request's cache, if one was attached.
func FromContext(ctx context.Context) (*Cache, bool) {
	c, ok := ctx.Value(contextKey{}).(*Cache)
	return c, ok
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *Cache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = v
}

// Do returns the cached value for key, computing and caching it via fn on the
// first call within the request. Errors are not cached. Without a cache on the
// context, fn runs directly.
func Do[T any](ctx context.Context, key string, fn func() (T, error)) (T, error) {
	cache, ok := FromContext(ctx)
	if !ok {
		return fn()
	}
	if v, hit := cache.get(key); hit {
		return v.(T), nil
	}
	v, err := fn()
	if err != nil {
		return v, err
	}
	cache.set(key, v)
	return v, nil
}
