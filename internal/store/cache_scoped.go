package store

import (
	"context"
	"strings"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

// ScopedCache places every key of an inner [LocalCache] under the namespace
// returned by scope, usually the signed-in login. Several accounts can then
// share one cache file without reading each other's entries. An empty scope
// leaves keys untouched.
type ScopedCache struct {
	inner LocalCache
	scope func(ctx context.Context) string
}

func NewScopedCache(inner LocalCache, scope func(ctx context.Context) string) *ScopedCache {
	return &ScopedCache{inner: inner, scope: scope}
}

func (c *ScopedCache) namespace(ctx context.Context) string {
	s := c.scope(ctx)
	if s == "" {
		return ""
	}
	return "user:" + s + "/"
}

func (c *ScopedCache) Read(ctx context.Context, key string) (models.CacheEntry, bool, error) {
	return c.inner.Read(ctx, c.namespace(ctx)+key)
}

func (c *ScopedCache) Write(ctx context.Context, key string, entry models.CacheEntry) error {
	return c.inner.Write(ctx, c.namespace(ctx)+key, entry)
}

func (c *ScopedCache) Clear(ctx context.Context, key string) error {
	return c.inner.Clear(ctx, c.namespace(ctx)+key)
}

// Keys lists the keys of the current namespace with the namespace stripped.
func (c *ScopedCache) Keys(ctx context.Context, prefix string) ([]string, error) {
	ns := c.namespace(ctx)
	keys, err := c.inner.Keys(ctx, ns+prefix)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if ns == "" && strings.HasPrefix(k, "user:") {
			continue
		}
		out = append(out, strings.TrimPrefix(k, ns))
	}
	return out, nil
}
