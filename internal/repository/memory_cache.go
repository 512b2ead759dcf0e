package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
)

const (
	// DefaultMemoryCacheSize bounds the fallback cache when no size is given.
	DefaultMemoryCacheSize = 1024
	defaultMemoryCacheTTL  = 2 * time.Minute
)

type memoryCacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCache is an in-process stand-in for CacheRepository used when Redis is
// unavailable. It holds at most size entries, evicting the least recently used,
// and drops entries once their lifetime ends.
type MemoryCache struct {
	entries *expirable.LRU[string, memoryCacheEntry]
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache builds an empty cache of at most size entries, each living at
// most ttl.
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	if size <= 0 {
		size = DefaultMemoryCacheSize
	}
	if ttl <= 0 {
		ttl = defaultMemoryCacheTTL
	}
	return &MemoryCache{
		entries: expirable.NewLRU[string, memoryCacheEntry](size, nil, ttl),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get decodes the entry stored under key. Expired entries are removed and
// reported as misses.
func (c *MemoryCache) Get(_ context.Context, key string, dest interface{}) error {
	entry, ok := c.entries.Get(key)
	if !ok {
		return appErrors.ErrCacheMiss
	}
	if !c.now().Before(entry.expiresAt) {
		c.entries.Remove(key)
		return appErrors.ErrCacheMiss
	}
	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}
	return nil
}

// Set stores value for ttl, capped at the cache lifetime. A non-positive ttl
// uses the cache lifetime.
func (c *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cached %s: %w", key, err)
	}
	if ttl <= 0 || ttl > c.ttl {
		ttl = c.ttl
	}
	c.entries.Add(key, memoryCacheEntry{payload: payload, expiresAt: c.now().Add(ttl)})
	return nil
}

// DeleteByPattern removes keys matching a Redis style glob.
func (c *MemoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid cache pattern %s: %w", pattern, err)
	}
	for _, key := range c.entries.Keys() {
		if ok, _ := path.Match(pattern, key); ok {
			c.entries.Remove(key)
		}
	}
	return nil
}

// Len reports the number of entries currently held.
func (c *MemoryCache) Len() int {
	return c.entries.Len()
}
